package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/tatianab/maze-game/assets"
	"github.com/tatianab/maze-game/internal/config"
	"github.com/tatianab/maze-game/internal/engine"
	"github.com/tatianab/maze-game/internal/models"
)

const maxTurns = 25

// strategies are scripted command sequences played to the end.
var strategies = []struct {
	name    string
	actions []string
}{
	{"rush", []string{"east", "east", "fight"}},
	{"armed", []string{"loot", "east", "east", "fight"}},
	{"one lesson", []string{"loot", "east", "talk", "east", "fight"}},
	{"scholar", []string{"loot", "east", "talk", "talk", "talk", "east", "fight"}},
	{"overstudied", []string{"loot", "east", "talk", "talk", "talk", "talk", "talk", "east", "fight"}},
}

func main() {
	games := flag.Int("games", 1000, "games per strategy")
	seed := flag.Uint64("seed", 1, "random seed")
	useLLM := flag.Bool("llm", false, "also let a Gemini model play one game")
	flag.Parse()

	ctx := context.Background()
	content, err := models.ParseContent(assets.Content)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	runID := uuid.New().String()
	fmt.Printf("Simulation %s: %d games per strategy, seed %d\n\n", runID, *games, *seed)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	for _, s := range strategies {
		wins, totalScore := 0, 0
		for range *games {
			eng, err := engine.New(engine.Options{Content: content, Maps: assets.Maps(), Dice: rng})
			if err != nil {
				log.Fatalf("Failed to create engine: %v", err)
			}
			status := play(ctx, eng, s.actions)
			if status == models.StatusWon {
				wins++
			}
			totalScore += eng.State().Score
		}
		fmt.Printf("%-12s win rate %5.1f%%  mean score %6.1f\n",
			s.name,
			100*float64(wins)/float64(*games),
			float64(totalScore)/float64(*games))
	}

	if *useLLM {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY is required with -llm")
		}
		if err := playWithModel(ctx, cfg, content, rng); err != nil {
			log.Fatalf("Model game failed: %v", err)
		}
	}
}

func play(ctx context.Context, eng *engine.Engine, actions []string) string {
	status := models.StatusPlaying
	for _, a := range actions {
		var err error
		_, status, err = eng.ProcessTurn(ctx, a)
		if err != nil || status != models.StatusPlaying {
			break
		}
	}
	return status
}

// playWithModel lets a Gemini model choose each command.
func playWithModel(ctx context.Context, cfg *config.Config, content *models.Content, rng *rand.Rand) error {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return err
	}
	defer client.Close()
	player := client.GenerativeModel(cfg.GeminiModel)

	eng, err := engine.New(engine.Options{Content: content, Maps: assets.Maps(), Dice: rng})
	if err != nil {
		return err
	}

	fmt.Println("\n--- Model game ---")
	fmt.Println(eng.Start(ctx))
	for turn := 1; turn <= maxTurns; turn++ {
		action := nextAction(ctx, player, eng)
		outcome, status, err := eng.ProcessTurn(ctx, action)
		if err != nil {
			return err
		}
		fmt.Printf("--- Turn %d ---\nAction: %s\n%s\nStatus: %s\n\n", turn, action, outcome, status)
		if status != models.StatusPlaying {
			break
		}
	}
	fmt.Printf("Final score: %d\n", eng.State().Score)
	return nil
}

func nextAction(ctx context.Context, model *genai.GenerativeModel, eng *engine.Engine) string {
	state := eng.State()
	history := ""
	for _, entry := range eng.History().Entries {
		history += fmt.Sprintf("Action: %s\nOutcome: %s\n", entry.PlayerAction, entry.Outcome)
	}

	prompt := fmt.Sprintf(`You are playing a text dungeon crawl.
Room: %s
%s
Inventory: %v
Score: %d

%s

History:
%s

Reply with exactly one command and nothing else.`,
		state.Room, state.Exits, state.Inventory, state.Score, engine.HelpText, history)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "look"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}
