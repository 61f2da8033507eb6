// Package concierge answers free-form guest and staff questions about the
// pub. It assembles a context-rich prompt from the static knowledge base,
// the live tap list and the reservation overview, then asks the LLM.
package concierge

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"castlechat/models"
	"castlechat/services/pubdata"
	"castlechat/utils"

	"go.uber.org/zap"
)

const historyLimit = 10

const guestSystemPrompt = `You are the Castle Pub Assistant, a knowledgeable guide for The Castle Pub in Berlin Mitte. You help guests with our craft beer selection, stone-oven pizza, opening hours and reservations.

YOUR PERSONALITY:
- Casual and friendly, reflecting our neighborhood pub atmosphere
- Enthusiastic about craft beer and our rotating tap selection
- Knowledgeable about our beer garden and events
- Helpful with opening hours and how reservations work

RESPONSE GUIDELINES:
- Orders are placed at the bar, we bring them to your table
- Emphasize our rotating craft beer selection
- Highlight our beer garden when weather permits
- Walk-ins are always welcome, reservations are free online
- Keep Berlin timezone in mind for opening hours
- Mention our stone-oven pizza when discussing food
- Never share other guests' names or booking details

CONTEXT INFORMATION:
---`

const staffSystemPrompt = `You are The Castle Pub's STAFF assistant, providing detailed operational information for internal use. You have access to complete reservation data, booking details, and operational metrics.

CORE INFORMATION:
- Located at Invalidenstraße 129, 10115 Berlin Mitte
- Orders at the bar, rotating craft beer taps
- Stone-oven pizza kitchen
- Spacious beer garden for outdoor dining

STAFF COMMUNICATION STYLE:
- Professional and direct
- Detailed operational information
- Access to guest names and booking details when appropriate
- Specific availability and scheduling data

STAFF RESPONSE GUIDELINES:
1. Reservation Management:
   - Provide specific reservation details including names, times, and party sizes
   - Give accurate room availability and booking status
   - Mention specific guest requests and special arrangements
2. Operational Information:
   - Daily statistics and booking levels
   - Room utilization and expected busy periods
3. Beer Selection:
   - Detailed current tap selection and recommendations

LINK FORMATTING RULES:
- Never use Markdown formatting for links
- Never add punctuation immediately after a URL
- Always provide clean, clickable URLs

IMPORTANT: This is for STAFF USE ONLY. Never share guest personal information inappropriately, but provide operational details needed for effective service.`

// Service answers guest and staff chat messages.
type Service interface {
	GuestReply(ctx context.Context, message string, history []models.ChatMessage) (string, error)
	StaffReply(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

type DefaultService struct {
	LLM      Generator
	Beer     *pubdata.BeerFetcher
	Overview pubdata.OverviewProvider
	Now      func() time.Time
}

func NewDefaultService(llm Generator, beer *pubdata.BeerFetcher, overview pubdata.OverviewProvider, now func() time.Time) *DefaultService {
	if now == nil {
		now = time.Now
	}
	return &DefaultService{LLM: llm, Beer: beer, Overview: overview, Now: now}
}

func (s *DefaultService) GuestReply(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	prompt := s.buildPrompt(ctx, guestSystemPrompt, message, history, false)
	reply, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("guest concierge generation failed", zap.Error(err))
		return "", err
	}
	utils.GetLogger().Info("guest concierge reply",
		zap.String("question", clip(message, 50)),
		zap.String("reply", clip(reply, 50)))
	return reply, nil
}

func (s *DefaultService) StaffReply(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	prompt := s.buildPrompt(ctx, staffSystemPrompt, message, history, true)
	reply, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("staff concierge generation failed", zap.Error(err))
		return "", err
	}
	reply = fixLinks(reply)
	utils.GetLogger().Info("staff concierge reply",
		zap.String("question", clip(message, 50)),
		zap.String("reply", clip(reply, 50)))
	return reply, nil
}

func (s *DefaultService) buildPrompt(ctx context.Context, system, message string, history []models.ChatMessage, staff bool) string {
	now := s.Now()

	sections := []string{system, pubdata.FormatAll(now)}

	beerBlock := "Beer menu currently unavailable - please ask staff for current selection."
	if s.Beer != nil {
		beerBlock = pubdata.FormatBeerMenu(s.Beer.Fetch(ctx))
	}
	sections = append(sections, beerBlock)

	if s.Overview != nil {
		overview, err := s.Overview.Overview(ctx)
		switch {
		case err != nil && staff:
			utils.GetLogger().Warn("reservation overview unavailable", zap.Error(err))
			sections = append(sections, "**STAFF RESERVATIONS:** Data temporarily unavailable.")
		case err != nil:
			utils.GetLogger().Warn("reservation overview unavailable", zap.Error(err))
		case staff:
			sections = append(sections, pubdata.FormatOverviewForStaff(overview, now))
		default:
			sections = append(sections, pubdata.FormatOverviewForGuests(overview))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(sections, "\n\n---\n\n"))
	b.WriteString("\n\n---\n\n")

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, msg := range history {
		role := "User"
		if msg.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
	}
	fmt.Fprintf(&b, "User: %s\nAssistant:", message)

	return b.String()
}

var (
	urlTrailingPunctRe = regexp.MustCompile(`(https?://[^\s]+?)([.,;!?)\]}]+)(\s|$)`)
	markdownLinkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// fixLinks strips Markdown link syntax and trailing punctuation stuck to
// URLs so replies stay clickable in the staff dashboard.
func fixLinks(text string) string {
	cleaned := markdownLinkRe.ReplaceAllString(text, "$2")
	return urlTrailingPunctRe.ReplaceAllString(cleaned, "$1$3")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
