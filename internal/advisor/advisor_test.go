package advisor_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/ecohub/internal/advisor"
	"github.com/UnknownOlympus/ecohub/internal/config"
	"github.com/UnknownOlympus/ecohub/internal/metrics"
	"github.com/UnknownOlympus/ecohub/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var aiConfig = config.AIConfig{Model: "gpt-3.5-turbo", Timeout: 5 * time.Second}

func completion(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

// outcomes returns the advisor request counters keyed by "kind/outcome".
func outcomes(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != "ecohub_advisor_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := make(map[string]string)
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			values[labels["kind"]+"/"+labels["outcome"]] += m.GetCounter().GetValue()
		}
	}

	return values
}

func newAdvisor(t *testing.T, client advisor.ChatClient) (*advisor.Advisor, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()

	return advisor.New(slog.Default(), client, aiConfig, metrics.NewMetrics(reg)), reg
}

func TestAdvisor_Advice(t *testing.T) {
	t.Parallel()
	req := advisor.AdviceRequest{Location: "Nairobi", RoofSize: "40 m2", EnergyUsage: 300, Budget: "KSH 200,000"}

	t.Run("successful completion", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, reg := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(r openai.ChatCompletionRequest) bool {
			return r.Model == "gpt-3.5-turbo" && r.MaxTokens == 600 && len(r.Messages) == 2 &&
				r.Messages[0].Role == openai.ChatMessageRoleSystem &&
				strings.Contains(r.Messages[1].Content, "Location: Nairobi") &&
				strings.Contains(r.Messages[1].Content, "300 kWh/month")
		})).Return(completion("Go solar ☀️ and save 🌱 every month ☀️"), nil).Once()

		advice := adv.Advice(t.Context(), req)

		assert.Equal(t, "Go solar ☀️ and save 🌱 every month ☀️", advice.Advice)
		assert.InDelta(t, 150.0, advice.CarbonSavingsEstimate, 1e-9)
		assert.Equal(t, []string{"☀️", "🌱"}, advice.Emojis)
		assert.Equal(t, "Nairobi", advice.Metadata.Location)
		assert.False(t, advice.Metadata.Fallback)
		assert.Empty(t, advice.Error)
		assert.InDelta(t, 1.0, outcomes(t, reg)["advice/ok"], 1e-9)
	})

	t.Run("no client configured", func(t *testing.T) {
		t.Parallel()
		adv, reg := newAdvisor(t, nil)

		advice := adv.Advice(t.Context(), req)

		assert.True(t, advice.Metadata.Fallback)
		assert.Contains(t, advice.Advice, "high demand")
		assert.InDelta(t, 500.0, advice.CarbonSavingsEstimate, 1e-9)
		assert.Equal(t, []string{"☀️", "💡", "🌱"}, advice.Emojis)
		assert.InDelta(t, 1.0, outcomes(t, reg)["advice/fallback"], 1e-9)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		quotaErr := errors.New("error, status code: 429, message: You exceeded your current quota")
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, quotaErr).Once()

		advice := adv.Advice(t.Context(), req)

		assert.True(t, advice.Metadata.Fallback)
		assert.Contains(t, advice.Advice, "high demand")
	})

	t.Run("error - api failure", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, assert.AnError).Once()

		advice := adv.Advice(t.Context(), req)

		assert.False(t, advice.Metadata.Fallback)
		assert.Contains(t, advice.Advice, "I'm sorry")
		assert.Zero(t, advice.CarbonSavingsEstimate)
		assert.Equal(t, []string{"🌱"}, advice.Emojis)
		assert.Contains(t, advice.Error, "AI service error")
	})

	t.Run("error - completion without choices", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, nil).Once()

		advice := adv.Advice(t.Context(), req)

		assert.Contains(t, advice.Error, advisor.ErrEmptyCompletion.Error())
	})
}

func TestAdvisor_Chat(t *testing.T) {
	t.Parallel()
	req := advisor.ChatRequest{Message: "Is wind power worth it in Naivasha?", Location: "Naivasha", Role: "consumer"}

	t.Run("successful completion", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, reg := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(r openai.ChatCompletionRequest) bool {
			prompt := r.Messages[1].Content
			return strings.Contains(prompt, "Is wind power worth it in Naivasha?") &&
				strings.Contains(prompt, "User location: Naivasha | User role: consumer")
		})).Return(completion("Yes! 🌍 Naivasha is windy."), nil).Once()

		reply := adv.Chat(t.Context(), req)

		assert.Equal(t, "Yes! 🌍 Naivasha is windy.", reply.Response)
		assert.Equal(t, []string{"🌍"}, reply.Emojis)
		assert.False(t, reply.Fallback)
		assert.InDelta(t, 1.0, outcomes(t, reg)["chat/ok"], 1e-9)
	})

	t.Run("no client configured", func(t *testing.T) {
		t.Parallel()
		adv, _ := newAdvisor(t, nil)

		reply := adv.Chat(t.Context(), req)

		assert.True(t, reply.Fallback)
		assert.Contains(t, reply.Response, "high demand")
	})

	t.Run("error - api failure", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, assert.AnError).Once()

		reply := adv.Chat(t.Context(), req)

		assert.True(t, reply.Fallback)
		assert.Contains(t, reply.Response, "I'm sorry")
	})
}

func TestAdvisor_ListingCopy(t *testing.T) {
	t.Parallel()
	req := advisor.ListingCopyRequest{EnergyType: "Solar", PricePerKWh: 0.15, Location: "Kisumu", AvailableKWh: 800}

	t.Run("successful completion", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(r openai.ChatCompletionRequest) bool {
			return r.MaxTokens == 400 && strings.Contains(r.Messages[1].Content, "Price per kWh: 0.15")
		})).Return(completion("TITLE: Sunny Kilowatts ☀️ | DESCRIPTION: Clean power for Kisumu 🌍"), nil).Once()

		listingCopy := adv.ListingCopy(t.Context(), req)

		assert.Equal(t, "Sunny Kilowatts ☀️", listingCopy.Title)
		assert.Equal(t, "Clean power for Kisumu 🌍", listingCopy.Description)
		require.NotNil(t, listingCopy.SuggestedPrice)
		assert.InDelta(t, 0.15, *listingCopy.SuggestedPrice, 1e-9)
		assert.Equal(t, []string{"☀️", "🌍"}, listingCopy.Emojis)
	})

	t.Run("no client configured", func(t *testing.T) {
		t.Parallel()
		adv, _ := newAdvisor(t, nil)

		listingCopy := adv.ListingCopy(t.Context(), req)

		assert.True(t, listingCopy.Fallback)
		assert.Equal(t, "Premium Solar Energy - Clean & Reliable", listingCopy.Title)
		assert.Equal(t,
			"High-quality solar energy available for purchase. Reduce your carbon footprint and save money!",
			listingCopy.Description)
	})

	t.Run("error - api failure", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewChatClient(t)
		adv, _ := newAdvisor(t, client)
		client.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(openai.ChatCompletionResponse{}, assert.AnError).Once()

		listingCopy := adv.ListingCopy(t.Context(), advisor.ListingCopyRequest{})

		assert.False(t, listingCopy.Fallback)
		assert.Equal(t, "🌱 Renewable Energy Available", listingCopy.Title)
		assert.Equal(t, "Clean renewable energy available for purchase. 🌍", listingCopy.Description)
		assert.Contains(t, listingCopy.Error, "AI service error")
	})
}

func TestParseListingCopy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		text        string
		title       string
		description string
	}{
		{"pipe separated", "TITLE: Wind for Ngong | DESCRIPTION: Steady breeze power", "Wind for Ngong", "Steady breeze power"},
		{"line separated", "TITLE: Hydro Surplus\nDESCRIPTION: From the Tana river", "Hydro Surplus", "From the Tana river"},
		{"missing description", "TITLE: Biomass Supply", "Biomass Supply", "Clean renewable energy available for purchase."},
		{"free text", "Here is a great listing!", "Renewable Energy Available", "Clean renewable energy available for purchase."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			title, description := advisor.ParseListingCopy(tc.text)

			assert.Equal(t, tc.title, title)
			assert.Equal(t, tc.description, description)
		})
	}
}

func TestExtractEmojis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"⚡", "🌱"}, advisor.ExtractEmojis("Power ⚡ to the people 🌱 ⚡"))
	assert.Equal(t, []string{}, advisor.ExtractEmojis("plain text"))
}

func TestCarbonSavings(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 250.0, advisor.CarbonSavings(500), 1e-9)
	assert.Zero(t, advisor.CarbonSavings(0))
	assert.Zero(t, advisor.CarbonSavings(-10))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	assert.Nil(t, advisor.NewClient(config.AIConfig{}))
	assert.NotNil(t, advisor.NewClient(config.AIConfig{APIKey: "sk-test", BaseURL: "http://localhost:11434/v1"}))
}
