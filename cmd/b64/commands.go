package main

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/libbase64/base64"
	"github.com/ericlagergren/libbase64/internal/config"
)

// environment is the state shared by the commands of one run.
type environment struct {
	log *logrus.Logger
	// cfg is nil when no configuration file was given.
	cfg *config.File
}

// setup configures logging and loads the configuration file.
func (env *environment) setup(c *cli.Context) error {
	logger, err := newLogger(c.App.ErrWriter, c.String("log-level"), c.String("log-format"))
	if err != nil {
		return err
	}
	env.log = logger

	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		env.cfg = cfg
		env.log.WithField("config", path).Debug("loaded configuration")
	}
	return nil
}

// standard resolves the standard selected by the global flags.
func (env *environment) standard(c *cli.Context) (*base64.Standard, error) {
	s, err := env.cfg.Resolve(c.String("standard"))
	if err != nil {
		return nil, err
	}
	if c.Bool("lenient") {
		s = s.Lenient()
	}
	if c.Bool("strict") {
		s = s.Strict()
	}
	env.log.WithFields(logrus.Fields{
		"standard": s.Name(),
		"lenient":  s.Discards(),
		"strict":   s.IsStrict(),
	}).Debug("selected standard")
	return s, nil
}

func (env *environment) encode(c *cli.Context) error {
	s, err := env.standard(c)
	if err != nil {
		return err
	}
	wrap := c.Int("wrap")
	if wrap < 0 {
		return errors.Errorf("invalid --wrap %d", wrap)
	}

	src, err := readInput(c, c.String("input"))
	if err != nil {
		return err
	}
	dst := s.AppendEncode(nil, src)
	if wrap > 0 {
		dst = wrapLines(dst, wrap)
	}
	dst = append(dst, '\n')

	env.log.WithFields(logrus.Fields{
		"in":  len(src),
		"out": len(dst),
	}).Debug("encoded")
	return writeOutput(c, c.String("output"), dst)
}

func (env *environment) decode(c *cli.Context) error {
	s, err := env.standard(c)
	if err != nil {
		return err
	}

	src, err := readInput(c, c.String("input"))
	if err != nil {
		return err
	}
	// Tolerate the line break that usually terminates encoded
	// text, even for non-lenient standards.
	src = bytes.TrimRight(src, "\r\n")

	dst, err := s.AppendDecode(nil, src)
	if err != nil {
		return errors.Wrapf(err, "could not decode with %s", s.Name())
	}

	env.log.WithFields(logrus.Fields{
		"in":  len(src),
		"out": len(dst),
	}).Debug("decoded")
	return writeOutput(c, c.String("output"), dst)
}

func (env *environment) standards(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALPHABET\tPAD\tMODE")
	for _, name := range env.cfg.Names() {
		s, err := env.cfg.Resolve(name)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, s.Alphabet(), padName(s.Padding()), modeName(s))
	}
	return errors.WithStack(w.Flush())
}

func padName(r rune) string {
	if r == base64.NoPadding {
		return "none"
	}
	return strconv.QuoteRune(r)
}

func modeName(s *base64.Standard) string {
	switch {
	case s.Discards() && s.IsStrict():
		return "lenient,strict"
	case s.Discards():
		return "lenient"
	case s.IsStrict():
		return "strict"
	}
	return "-"
}
