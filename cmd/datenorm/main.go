package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"datenorm/internal/config"
	"datenorm/internal/ics"
	"datenorm/internal/instant"
	appLog "datenorm/internal/log"
	"datenorm/internal/parse"
	"datenorm/internal/seqgen"
)

// flagConfig holds CLI flag values before merging with file config.
type flagConfig struct {
	configPath string
	dayFirst   bool
	format     string
	out        string
	start      string
	periods    int
	step       string
	cronSpec   string
	rruleSpec  string
	years      string
	months     string
	days       string
	emitICS    bool
	debug      bool
}

func main() {
	flags := parseFlags()

	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		conf = loaded
	}

	// CLI flags override file config where set.
	if flags.dayFirst {
		conf.DayFirst = true
	}
	if flags.out != "" {
		conf.OutputFormat = flags.out
	}
	if flags.step != "" {
		conf.Range.Step = flags.step
	}
	if flags.periods > 0 {
		conf.Range.Periods = flags.periods
	}

	seq, err := run(flags, conf)
	if err != nil {
		appLog.Error("datenorm failed", err)
		os.Exit(1)
	}

	if flags.emitICS {
		body, err := ics.Export(seq, ics.ExportConfig{Name: conf.ICS.Name, Summary: conf.ICS.Summary})
		if err != nil {
			appLog.Error("ics export failed", err)
			os.Exit(1)
		}
		os.Stdout.Write(body)
		return
	}

	for _, in := range seq {
		fmt.Println(parse.Format(in, conf.OutputFormat))
	}
}

// run dispatches on the selected mode and produces the output sequence.
func run(flags flagConfig, conf *config.Config) (instant.Sequence, error) {
	switch {
	case flags.years != "" || flags.months != "" || flags.days != "":
		return combineMode(flags)

	case flags.cronSpec != "":
		start, err := resolveStart(flags, conf)
		if err != nil {
			return nil, err
		}
		return seqgen.CronRange(start, flags.cronSpec, conf.Range.Periods)

	case flags.rruleSpec != "":
		start, err := resolveStart(flags, conf)
		if err != nil {
			return nil, err
		}
		return seqgen.RRuleRange(start, flags.rruleSpec, conf.Range.Periods)

	case flags.periods > 0:
		start, err := resolveStart(flags, conf)
		if err != nil {
			return nil, err
		}
		step, err := parseStep(conf.Range.Step)
		if err != nil {
			return nil, err
		}
		return seqgen.Range(start, conf.Range.Periods, step)

	default:
		return normalizeMode(flags, conf)
	}
}

// normalizeMode reads date strings from argv (or stdin, one per line,
// when no arguments were given) and normalizes them in order.
func normalizeMode(flags flagConfig, conf *config.Config) (instant.Sequence, error) {
	tokens := flag.Args()
	if len(tokens) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				tokens = append(tokens, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no input dates given")
	}

	// An explicit -format bypasses free-form recognition entirely.
	if flags.format != "" {
		seq := make(instant.Sequence, 0, len(tokens))
		for _, tok := range tokens {
			in, err := parse.WithFormat(tok, flags.format)
			if err != nil {
				return nil, err
			}
			seq = append(seq, in)
		}
		return seq, nil
	}

	seq := make(instant.Sequence, 0, len(tokens))
	for i, tok := range tokens {
		in, err := normalizeOne(tok, conf)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		seq = append(seq, in)
	}
	return seq, nil
}

// normalizeOne tries the configured explicit formats in order, then
// falls back to free-form recognition.
func normalizeOne(tok string, conf *config.Config) (instant.Instant, error) {
	for _, f := range conf.Formats {
		if in, err := parse.WithFormat(tok, f); err == nil {
			return in, nil
		}
	}
	return parse.FreeForm(tok, parse.DayFirst(conf.DayFirst))
}

func combineMode(flags flagConfig) (instant.Sequence, error) {
	years, err := splitInts(flags.years)
	if err != nil {
		return nil, fmt.Errorf("-years: %w", err)
	}
	months, err := splitInts(flags.months)
	if err != nil {
		return nil, fmt.Errorf("-months: %w", err)
	}
	days, err := splitInts(flags.days)
	if err != nil {
		return nil, fmt.Errorf("-days: %w", err)
	}
	return parse.CombineFields(years, months, days)
}

func resolveStart(flags flagConfig, conf *config.Config) (instant.Instant, error) {
	if flags.start == "" {
		return instant.Now(), nil
	}
	return normalizeOne(flags.start, conf)
}

// parseStep accepts a Go duration string ("24h", "90m") or a bare
// integer meaning whole days, matching the config file's range.step.
func parseStep(s string) (instant.Duration, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return instant.Days(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return instant.Duration{}, fmt.Errorf("bad step %q: %w", s, err)
	}
	return instant.FromStd(d), nil
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("missing value list")
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (optional)")
	flag.BoolVar(&cfg.dayFirst, "dayfirst", false, "Read ambiguous numeric dates as day-first (06-04-2001 -> day 6)")
	flag.StringVar(&cfg.format, "format", "", "Explicit strftime format to parse inputs with (e.g. %m-%Y)")
	flag.StringVar(&cfg.out, "out", "", "strftime format for output (default from config)")
	flag.StringVar(&cfg.start, "start", "", "Start date for range generation (default: now)")
	flag.IntVar(&cfg.periods, "periods", 0, "Generate this many values instead of normalizing input")
	flag.StringVar(&cfg.step, "step", "", "Range step: Go duration or whole days (e.g. 24h, 7)")
	flag.StringVar(&cfg.cronSpec, "cron", "", "Generate range from a cron schedule (e.g. '0 9 * * 1-5')")
	flag.StringVar(&cfg.rruleSpec, "rrule", "", "Generate range from an RFC 5545 rule (e.g. FREQ=WEEKLY;BYDAY=MO)")
	flag.StringVar(&cfg.years, "years", "", "Comma-separated years to combine with -months/-days")
	flag.StringVar(&cfg.months, "months", "", "Comma-separated months to combine with -years/-days")
	flag.StringVar(&cfg.days, "days", "", "Comma-separated days to combine with -years/-months")
	flag.BoolVar(&cfg.emitICS, "ics", false, "Emit the result as an iCalendar payload")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
