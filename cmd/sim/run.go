package main

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/scene/playing"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/render"
)

// ErrDigestMismatch is returned when a replay does not end in its recorded state
var ErrDigestMismatch = errors.New("digest mismatch")

// sweepTicks is how long the autopilot moves in one direction
const sweepTicks = 90

// recordAuto is the --record value used when no file is given
const recordAuto = "auto"

type runOptions struct {
	seed       int64
	ticks      int
	configPath string
	replayPath string
	recordPath string
}

type summary struct {
	State  state.GameState
	Tick   int
	Level  int
	Lives  int
	Health int
	Kills  int
	Digest uint64
	// Expected is the digest stored in the replay, 0 if none
	Expected uint64
}

func (s summary) String() string {
	return fmt.Sprintf("state=%s tick=%d level=%d lives=%d health=%d kills=%d digest=%016x",
		s.State, s.Tick, s.Level, s.Lives, s.Health, s.Kills, s.Digest)
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a game headlessly and print the final state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.seed = flags.seed
			opts.configPath = flags.config
			if opts.seed == 0 && opts.replayPath == "" {
				opts.seed = time.Now().UnixNano()
			}
			if opts.recordPath == recordAuto {
				opts.recordPath = replay.GenerateFilename()
			}

			sum, err := simulate(opts, newLogger(flags))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.ticks, "ticks", 36000, "Ticks to run (0 = until the game ends)")
	cmd.Flags().StringVar(&opts.replayPath, "replay", "", "Replay file to take input from")
	cmd.Flags().StringVar(&opts.recordPath, "record", "", "Record input to file (--record alone picks a timestamped name)")
	cmd.Flags().Lookup("record").NoOptDefVal = recordAuto
	return cmd
}

func newVerifyCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <replay>",
		Short: "Replay a recording and check it ends in the recorded state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := simulate(runOptions{
				configPath: flags.config,
				replayPath: args[0],
			}, newLogger(flags))
			if err != nil {
				return err
			}
			if sum.Expected == 0 {
				return fmt.Errorf("%s has no recorded digest", args[0])
			}
			if sum.Digest != sum.Expected {
				return fmt.Errorf("%w: got %016x, recorded %016x", ErrDigestMismatch, sum.Digest, sum.Expected)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok", sum)
			return err
		},
	}
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	return config.NewLoader(filepath.Dir(path)).LoadFile(filepath.Base(path))
}

// simulate steps one game to the end or to opts.ticks
func simulate(opts runOptions, logger *log.Logger) (summary, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return summary{}, err
	}

	var (
		input    system.InputSource
		replayer *replay.Replayer
		seed     = opts.seed
		expected uint64
	)
	if opts.replayPath != "" {
		data, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			return summary{}, fmt.Errorf("failed to load replay: %w", err)
		}
		replayer = replay.NewReplayer(*data)
		input = replayer
		seed = replayer.Seed()
		expected = replayer.Digest()
		logger.Info("replaying", "file", opts.replayPath, "frames", replayer.TotalFrames(), "seed", seed)
	} else {
		input = newAutopilot(sweepTicks)
	}

	var rec *replay.Recorder
	if opts.recordPath != "" {
		rec = replay.NewRecorder(seed)
	}

	p, err := playing.New(cfg, assets.NewAtlas(cfg), render.NewRenderer(), rand.New(rand.NewSource(seed)), input, logger)
	if err != nil {
		return summary{}, err
	}
	p.OnEnter()

	// A replay runs its recorded frames; otherwise opts.ticks bounds the run
	done := func() bool {
		if replayer != nil {
			return replayer.Done()
		}
		return opts.ticks > 0 && p.Tick() >= opts.ticks
	}

	for !done() {
		in := input.GetInput()
		if rec != nil && rec.IsRecording() {
			rec.RecordFrame(in)
		}
		st, err := p.Step(in)
		if err != nil {
			return summary{}, err
		}
		if st == state.StateTerminated {
			if rec != nil {
				rec.Stop()
			}
			break
		}
	}

	sum := summary{
		State:    p.State(),
		Tick:     p.Tick(),
		Level:    p.Level(),
		Lives:    p.Lives(),
		Health:   p.Player().Health,
		Kills:    p.Kills(),
		Digest:   p.Digest(),
		Expected: expected,
	}

	if rec != nil {
		rec.SetDigest(sum.Digest)
		if err := rec.Save(opts.recordPath); err != nil {
			return sum, fmt.Errorf("failed to save recording: %w", err)
		}
		logger.Info("recording saved", "file", opts.recordPath, "frames", rec.FrameCount())
	}

	return sum, nil
}
