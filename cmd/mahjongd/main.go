package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mahjongcore/config"
	applog "mahjongcore/log"
	"mahjongcore/mahjong"
	"mahjongcore/variant"
)

// Grounded on the teacher's user/main.go, hall/main.go, march/main.go:
// a cobra root command loads a config file then runs one service. This
// reference CLI plays a single hand and prints its Result instead of
// starting a long-lived networked service, since that concern (grpc
// server, etcd registration, statsviz/metrics endpoint) is out of this
// specification's scope (see DESIGN.md).

var configFile string
var seedFlag int64

var rootCmd = &cobra.Command{
	Use:   "mahjongd",
	Short: "mahjongd plays one hand of a tile-matching game and reports the result",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "deal and moderate one hand to its terminal result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		logger := applog.New("mahjongd")
		logger.SetLevelByName(cfg.Log.Level)

		if cfg.Game.Variant != "jp4s17t" {
			return fmt.Errorf("mahjongd: unknown variant %q", cfg.Game.Variant)
		}
		v := variant.NewJp4s17t()

		seed := cfg.Game.Seed
		switch {
		case cmd.Flags().Changed("seed"):
			seed = seedFlag
		case seed == 0:
			seed = time.Now().UnixNano()
		}
		r := rand.New(rand.NewSource(seed))
		shuffled := variant.Shuffle(r, v.TileUniverse())
		hands, wall := variant.Deal(shuffled)

		policies := [4]mahjong.Policy{
			mahjong.NewRandomPolicy(r),
			mahjong.NewRandomPolicy(r),
			mahjong.NewRandomPolicy(r),
			mahjong.NewRandomPolicy(r),
		}

		m := mahjong.NewHandModerator(hands, policies, wall, v.Catalogue, v.DistinctTiles(), v.ChowEnabled,
			cfg.Game.DealerSeat, cfg.Game.Honba, logger)

		result := m.Play()
		printResult(result)
		return nil
	},
}

func printResult(r mahjong.Result) {
	switch r.Kind {
	case mahjong.ResultWin:
		source := "self-draw"
		if r.SourceSeat >= 0 {
			source = fmt.Sprintf("seat %d's discard", r.SourceSeat)
		}
		fmt.Printf("seat %d wins on %s with %+v, winning tile %v\n", r.WinnerSeat, source, r.Point, r.WinningTile)
	case mahjong.ResultExhaustiveDraw:
		fmt.Printf("exhaustive draw, ready seats %v, next dealer %d, honba %d\n", r.ReadySeats, r.DealerSeat, r.Honba)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "mahjongd.yaml", "configuration file path")
	playCmd.Flags().Int64Var(&seedFlag, "seed", 0, "shuffle seed (default: config value, or time-based if unset)")
	rootCmd.AddCommand(playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
