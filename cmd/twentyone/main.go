package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/twentyone/internal/blackjack"
	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/ledger"
	"github.com/lox/twentyone/internal/randutil"
)

type CLI struct {
	Config     string `short:"c" default:"twentyone.hcl" help:"Path to HCL config file"`
	Decks      int    `help:"Number of decks in the shoe (1, 2, 4 or 6)"`
	Chips      int    `help:"Starting chip count for every seat"`
	Bet        int    `help:"Base bet offered each round"`
	StatsFile  string `help:"Path to the persisted player statistics file"`
	Pacing     string `help:"Table pacing: fast, normal or slow"`
	UpcardOnly bool   `help:"Show only the first card of each scripted hand until reveal"`
	Seed       *int64 `help:"Deterministic RNG seed (optional)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("twentyone"),
		kong.Description("Turn-based blackjack at a table of scripted opponents"),
		kong.UsageOnError(),
	)

	if err := run(&cli); err != nil {
		log.Fatal("Game ended with error", "error", err)
	}
	ctx.Exit(0)
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}

	debugFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "twentyone",
		Level:           level,
	})

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("Using random seed", "seed", seed)
	}

	session := uuid.NewString()
	logger.Info("Starting session",
		"session", session,
		"decks", cfg.Table.Decks,
		"chips", cfg.Table.StartingChips,
		"base_bet", cfg.Table.BaseBet)

	store := ledger.NewStore(cfg.UI.StatsFile, logger)
	lgr, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load player statistics: %w", err)
	}

	chips := cfg.Table.StartingChips
	players := []*blackjack.Player{
		blackjack.NewPlayer("You", true, chips, nil),
		blackjack.NewPlayer("Cautious Carl", false, chips, blackjack.NewConservative(randutil.New(seed+1))),
		blackjack.NewPlayer("Reckless Randy", false, chips, blackjack.NewAggressive(randutil.New(seed+2))),
		blackjack.NewPlayer("Smart Samantha", false, chips, blackjack.NewProbabilityInformed(randutil.New(seed+3))),
		blackjack.NewPlayer("Chaotic Chad", false, chips, blackjack.NewRandomized(randutil.New(seed+4))),
	}

	shoe := deck.NewShoeWithRand(cfg.Table.Decks, randutil.New(seed))

	d := display.New(display.Options{
		In:            os.Stdin,
		Out:           os.Stdout,
		Pacing:        cfg.UI.Pacing,
		UpcardOnly:    cfg.UI.UpcardOnly,
		Ledger:        lgr,
		Store:         store,
		Logger:        logger,
		StartingChips: chips,
		Rand:          randutil.New(seed + 5),
	})

	engine := blackjack.NewEngine(players, shoe, lgr, d, d, logger, blackjack.Config{
		BaseBet:  cfg.Table.BaseBet,
		LowWater: blackjack.DefaultConfig().LowWater,
	})
	d.SetEngine(engine)

	// Persist stats if the terminal session is torn down mid-round.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		store.SaveOrWarn(lgr)
		os.Exit(0)
	}()

	d.ShowTitle()
	err = gameLoop(engine, d, store, lgr)

	d.ShowLeaderboard()
	d.ShowSessionStats()
	store.SaveOrWarn(lgr)
	logger.Info("Session complete", "session", session, "rounds", engine.Round())
	return err
}

func gameLoop(engine *blackjack.Engine, d *display.Display, store *ledger.Store, lgr *ledger.Ledger) error {
	for {
		result, err := engine.PlayRound()
		if errors.Is(err, blackjack.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		store.SaveOrWarn(lgr)

		d.ShowTable(true)
		d.ShowScoreboard()
		d.ShowRoundSummary(result)
		d.ShowSessionStats()
		d.ShowRoundFooter(result.Round)

		if removed := engine.RemoveBankrupt(); len(removed) > 0 {
			d.ShowBankrupt(removed)
		}
		if len(engine.Players()) < 2 {
			fmt.Println("Not enough players left at the table.")
			return nil
		}

	prompt:
		for {
			switch d.PromptContinue() {
			case display.PlayAnother:
				break prompt
			case display.OpenProfiles:
				d.ShowProfilesMenu()
			case display.StopPlaying:
				return nil
			}
		}
	}
}

func applyFlags(cfg *config.Config, cli *CLI) {
	if cli.Decks != 0 {
		cfg.Table.Decks = cli.Decks
	}
	if cli.Chips != 0 {
		cfg.Table.StartingChips = cli.Chips
	}
	if cli.Bet != 0 {
		cfg.Table.BaseBet = cli.Bet
	}
	if cli.StatsFile != "" {
		cfg.UI.StatsFile = cli.StatsFile
	}
	if cli.Pacing != "" {
		cfg.UI.Pacing = cli.Pacing
	}
	if cli.UpcardOnly {
		cfg.UI.UpcardOnly = true
	}
}
