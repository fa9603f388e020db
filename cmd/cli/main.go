package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"judgement/internal/game"
	"judgement/internal/logger"
)

const youID = "you"

func main() {
	app := &cli.App{
		Name:  "judgement",
		Usage: "play Judgement against bots in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Value: "You", Usage: "your display name"},
			&cli.IntFlag{Name: "bots", Value: 3, Usage: "number of bots (1-7)"},
			&cli.IntFlag{Name: "target", Value: 100, Usage: "target score, 0 plays every round"},
			&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, 0 uses the clock"},
			&cli.BoolFlag{Name: "verbose", Usage: "print engine debug logs"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	bots := c.Int("bots")
	if bots < 1 || bots > 7 {
		return fmt.Errorf("bots must be between 1 and 7, got %d", bots)
	}
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lg := zap.NewNop()
	if c.Bool("verbose") {
		var err error
		if lg, err = logger.New("debug"); err != nil {
			return err
		}
	}

	settings := game.DefaultSettings()
	settings.TargetScore = c.Int("target")
	feed := &logFeed{out: os.Stdout}
	e := game.NewEngine("LOCAL", settings, rand.New(rand.NewSource(seed)), feed, lg)

	if err := e.Join(youID, c.String("name")); err != nil {
		return err
	}
	for i := 1; i <= bots; i++ {
		if _, err := e.AddBot(youID, fmt.Sprintf("Robot %d", i)); err != nil {
			return err
		}
	}
	if err := e.StartGame(youID); err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	for {
		s := e.Snapshot()
		switch s.Phase {
		case game.PhaseGameOver:
			printScores(s)
			fmt.Printf("Winner: %s\n", strings.Join(names(s, game.Leaders(&s)), ", "))
			return nil
		case game.PhaseScoring:
			printScores(s)
			fmt.Print("Press enter for the next round...")
			if _, err := in.ReadString('\n'); err != nil {
				return quit(err)
			}
			if err := e.NextRound(youID); err != nil {
				return err
			}
			continue
		}

		if turn, ok := e.PendingBotTurn(); ok {
			if err := e.PlayBotTurn(turn); err != nil {
				return err
			}
			continue
		}

		printTable(s)
		me := s.Players[s.CurrentTurnIndex]
		switch s.Phase {
		case game.PhaseBidding:
			prompt := fmt.Sprintf("Your bid (0-%d)", s.CurrentRound.CardsCount)
			if s.CurrentTurnIndex == s.DealerIndex {
				if bad, ok := game.ForbiddenDealerBid(&s); ok {
					prompt += fmt.Sprintf(", not %d", bad)
				}
			}
			n, err := readInt(in, prompt)
			if err != nil {
				return err
			}
			if err := e.PlaceBid(me.ID, n); err != nil {
				fmt.Println("Invalid bid:", err)
			}
		case game.PhasePlaying:
			n, err := readInt(in, "Card index")
			if err != nil {
				return err
			}
			if err := e.PlayCard(me.ID, n); err != nil {
				fmt.Println("Invalid card:", err)
			}
		}
	}
}

// logFeed prints activity log entries as they appear.
type logFeed struct {
	out  io.Writer
	last *game.LogEntry
}

func (f *logFeed) StateChanged(s game.GameState) {
	start := 0
	if f.last != nil {
		for i := len(s.Logs) - 1; i >= 0; i-- {
			if s.Logs[i] == *f.last {
				start = i + 1
				break
			}
		}
	}
	for _, l := range s.Logs[start:] {
		fmt.Fprintf(f.out, "  * %s\n", l.Message)
	}
	if n := len(s.Logs); n > 0 {
		last := s.Logs[n-1]
		f.last = &last
	}
}

func printTable(s game.GameState) {
	fmt.Printf("\nRound %d/%d, %d cards", s.CurrentRound.RoundNumber, s.CurrentRound.TotalRounds, s.CurrentRound.CardsCount)
	if s.Trump.Suit != nil {
		fmt.Printf(", trump %s", *s.Trump.Suit)
	} else {
		fmt.Print(", no trump")
	}
	fmt.Println()
	for i, p := range s.Players {
		marker := " "
		if i == s.DealerIndex {
			marker = "D"
		}
		bid := "-"
		if p.Bid >= 0 {
			bid = strconv.Itoa(p.Bid)
		}
		fmt.Printf(" %s %-16s bid %-2s won %-2d score %d\n", marker, p.Name, bid, p.TricksWon, p.Score)
	}
	if len(s.CurrentTrick.Cards) > 0 {
		fmt.Print("Trick:")
		for _, pc := range s.CurrentTrick.Cards {
			fmt.Printf(" %s", pc.Card)
		}
		fmt.Println()
	}
	me := s.Players[s.CurrentTurnIndex]
	legal := map[int]bool{}
	if s.Phase == game.PhasePlaying {
		for _, i := range game.LegalCardIndices(me.Hand, s.CurrentTrick.LeadSuit) {
			legal[i] = true
		}
	}
	fmt.Print("Hand:")
	for i, c := range me.Hand {
		if s.Phase == game.PhasePlaying && !legal[i] {
			fmt.Printf("  (%d:%s)", i, c)
			continue
		}
		fmt.Printf("  %d:%s", i, c)
	}
	fmt.Println()
}

func printScores(s game.GameState) {
	fmt.Println("\nScores:")
	for _, p := range s.Players {
		fmt.Printf("  %-16s %d\n", p.Name, p.Score)
	}
}

func names(s game.GameState, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if i := s.PlayerIndex(id); i >= 0 {
			out = append(out, s.Players[i].Name)
		}
	}
	return out
}

func readInt(in *bufio.Reader, prompt string) (int, error) {
	for {
		fmt.Printf("%s: ", prompt)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, quit(err)
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		fmt.Println("Please enter a number.")
	}
}

func quit(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.New("input closed")
	}
	return err
}
