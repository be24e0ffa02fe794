package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yatra/internal/catalog"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

type TipsServiceInterface interface {
	GetTripTips(ctx context.Context, request request_models.TripTipsRequest) (*response_models.TripTipsResponse, error)
}

type TipsService struct {
	aiClient utils.AIClientInterface
}

// NewTipsService accepts a nil aiClient; the service then serves curated tips
// only, which keeps the endpoint usable without any provider key.
func NewTipsService(aiClient utils.AIClientInterface) TipsServiceInterface {
	return &TipsService{aiClient: aiClient}
}

var curatedTips = []string{
	"Carry a water bottle and sunscreen; afternoons get hot and humid for most of the year.",
	"Local trains and NMMT buses are the cheapest way to move between nodes like Vashi, Nerul and Belapur.",
	"Street food near station areas is best sampled in the evening when stalls are freshest.",
	"Most gardens and waterfront promenades are quietest right after sunrise.",
	"Keep small cash on hand; autorickshaws and small vendors often won't take cards.",
	"Check mall and attraction timings before heading out; several stay closed on Monday mornings.",
}

func (t *TipsService) GetTripTips(ctx context.Context, request request_models.TripTipsRequest) (*response_models.TripTipsResponse, error) {
	if strings.TrimSpace(request.Destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	if t.aiClient == nil {
		return &response_models.TripTipsResponse{
			Destination: request.Destination,
			Tips:        curatedTips,
			Source:      "curated",
		}, nil
	}

	text, err := t.aiClient.GenerateText(ctx, buildTipsPrompt(request))
	if err != nil {
		log.Printf("Error generating trip tips: %v, falling back to curated tips", err)
		return &response_models.TripTipsResponse{
			Destination: request.Destination,
			Tips:        curatedTips,
			Source:      "curated",
		}, nil
	}

	tips := parseTipLines(text)
	if len(tips) == 0 {
		return &response_models.TripTipsResponse{
			Destination: request.Destination,
			Tips:        curatedTips,
			Source:      "curated",
		}, nil
	}

	return &response_models.TripTipsResponse{
		Destination: request.Destination,
		Tips:        tips,
		Source:      "ai",
	}, nil
}

func buildTipsPrompt(request request_models.TripTipsRequest) string {
	var b strings.Builder
	b.WriteString("You are a local travel guide for Navi Mumbai, India.\n")
	fmt.Fprintf(&b, "Give 5 short practical travel tips for a visitor to %s.", request.Destination)
	if request.Days > 0 {
		fmt.Fprintf(&b, " The trip lasts %d day(s).", request.Days)
	}
	if len(request.Interests) > 0 {
		fmt.Fprintf(&b, " The visitor is interested in: %s.", strings.Join(request.Interests, ", "))
	}
	if places := catalog.PlacesByLocation(request.Destination); len(places) > 0 {
		names := make([]string, 0, len(places))
		for _, p := range places {
			names = append(names, p.Name)
		}
		fmt.Fprintf(&b, "\nAttractions there include: %s.", strings.Join(names, ", "))
	}
	b.WriteString("\nRespond with one tip per line, no numbering, no extra commentary.")
	return b.String()
}

// parseTipLines splits model output into clean one-line tips, stripping the
// bullet and numbering prefixes models tend to add anyway.
func parseTipLines(text string) []string {
	lines := strings.Split(text, "\n")
	tips := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789. )")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tips = append(tips, line)
	}
	return tips
}
