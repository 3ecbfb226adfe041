package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"goemap/internal/config"
	"goemap/internal/geom"
	"goemap/internal/pointarray"
	"goemap/internal/tui"
)

// app carries the settings resolved before any command runs.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "geomap [file]",
		Short:         "Terminal geospatial viewer",
		Long:          "geomap renders GeoJSON, CSV, KML and WKT files as braille in the terminal.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(args)
		},
	}
	if err := config.BindFlags(root.PersistentFlags(), a.v); err != nil {
		panic(err)
	}
	root.AddCommand(a.statsCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := config.ReadFile(a.v, path); err != nil {
		return err
	}
	if a.cfg, err = config.Load(a.v); err != nil {
		return err
	}
	a.log = a.cfg.Logger()
	pointarray.SetLogger(a.log)
	a.log.Debug("config",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Bool("compress", a.cfg.Compress),
		zap.Bool("decimate", a.cfg.Decimate))
	return nil
}

func (a *app) view(args []string) error {
	opts := tui.Options{
		Compression: a.cfg.Compression(),
		Decimate:    a.cfg.Decimate,
		Logger:      a.log,
	}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(args[0], opts)
	} else {
		m = tui.New(opts)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return errors.Wrap(err, "run viewer")
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Print geometry counts and memory use without opening the viewer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tPOINTS\tLINES\tPOLYGONS\tVERTICES\tCOMPRESSED\tMEMORY")
			var failed int
			for _, p := range args {
				d, err := geom.Load(p, a.cfg.Compression())
				if err != nil {
					a.log.Warn("stats", zap.String("path", p), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", p, err)
					failed++
					continue
				}
				s := d.Stats()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					filepath.Base(p),
					humanize.Comma(int64(s.Points)),
					humanize.Comma(int64(s.Lines)),
					humanize.Comma(int64(s.Polygons)),
					humanize.Comma(int64(s.Vertices)),
					s.Compressed,
					humanize.IBytes(uint64(s.Bytes)))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
