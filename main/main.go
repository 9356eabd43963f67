package main

import (
	"fmt"
	"os"

	"github.com/hexakin/hexapod"
	"github.com/hexakin/hexapod/config"
	"github.com/hexakin/hexapod/gait"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "main"})

var app = &cli.App{
	Name:            "hexapod",
	Usage:           "solve the pose of a six legged robot",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load dimensions and params from `FILE`",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "table",
			Usage: "output format: table or json",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	},
	Before: func(c *cli.Context) error {
		if c.Bool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		switch c.String("format") {
		case "table", "json":
			return nil
		}
		return fmt.Errorf("unknown format: %q", c.String("format"))
	},
	Commands: []*cli.Command{
		{
			Name:  "pose",
			Usage: "stand the hexapod up in a pose, and print where everything is",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "start",
					Usage: "use the reference start pose instead of the configured stance",
				},
			},
			Action: poseAction,
		},
		{
			Name:   "ik",
			Usage:  "move the body by the configured params, and print the leg angles",
			Action: ikAction,
		},
		{
			Name:   "walk",
			Usage:  "print the joint angles of one cycle of the configured gait",
			Action: walkAction,
		},
	},
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func poseAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	pose := cfg.IK.StartPose()
	if c.Bool("start") {
		pose = hexapod.StartPose()
	}

	h := hexapod.New(cfg.Dimensions, pose, cfg.HexapodOptions())
	log.WithField("found", h.FoundSolution).Info("assembled hexapod")

	return render(c, newHexapodView(h), func() string { return hexapodTable(h) })
}

func ikAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := hexapod.DefaultSolveOptions()
	opts.Hexapod = cfg.HexapodOptions()

	s, err := hexapod.SolveInverseKinematics(cfg.Dimensions, cfg.IK, opts)
	if s == nil {
		return err
	}
	if err != nil {
		log.WithError(err).Info("no solution")
	}

	return render(c, newSolutionView(s), func() string { return solutionTable(s) })
}

func walkAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	g, err := gait.WalkSequence(cfg.Dimensions, cfg.Gait, cfg.GaitType, cfg.WalkMode)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"type":  cfg.GaitType,
		"mode":  cfg.WalkMode,
		"ticks": g.Len(),
	}).Info("built walk sequence")

	return render(c, g.Sequences(), func() string { return gaitTable(g) })
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
