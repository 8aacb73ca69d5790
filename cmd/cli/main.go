package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cloud-ru/rou-lease-go/internal/calculations"
	"github.com/cloud-ru/rou-lease-go/internal/config"
	"github.com/cloud-ru/rou-lease-go/internal/report"
	"github.com/cloud-ru/rou-lease-go/internal/tools"
	"go.opentelemetry.io/otel/trace/noop"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "calc":
		err = cmdCalc(os.Args[2:])
	case "presets":
		err = cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --payment 100000 --frequency annual --rate 0.05 --term 5 --out results/depreciation_schedule.csv")
	fmt.Println("  cli calc --preset office-5y --presets-file examples/presets.yaml --html results/report.html")
	fmt.Println("  cli presets --presets-file examples/presets.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rate is a fraction: 0.05 means 5% per year")
	fmt.Println("  - schedule months are fixed 30-day steps from --start")
}

func cmdCalc(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	d := cfg.Defaults

	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	preset := fs.String("preset", "", "Optional: named preset to start from")
	presetsFile := fs.String("presets-file", cfg.PresetsFile, "Path to YAML lease presets")
	payment := fs.Float64("payment", d.PaymentAmount, "Lease payment per period")
	frequency := fs.String("frequency", calculations.PaymentFrequency(d.PaymentsPerYear).String(), "annual, semiannual, quarterly or monthly")
	rate := fs.Float64("rate", d.DiscountRateAnnual, "Annual discount rate as a fraction")
	term := fs.Float64("term", d.TermYears, "Lease term in years")
	residual := fs.Float64("residual", d.ResidualValue, "Residual value")
	idc := fs.Float64("idc", d.InitialDirectCosts, "Initial direct costs")
	start := fs.String("start", "", "Start date YYYY-MM-DD (default: today)")
	outPath := fs.String("out", "", "Optional: write schedule CSV to this path")
	htmlPath := fs.String("html", "", "Optional: write HTML report to this path")
	quiet := fs.Bool("quiet", false, "Do not print the schedule table")
	_ = fs.Parse(args)

	in := d.Inputs(time.Now())
	if *preset != "" {
		presets, err := config.LoadPresets(*presetsFile)
		if err != nil {
			return err
		}
		p, err := config.FindPreset(presets, *preset)
		if err != nil {
			return err
		}
		if in, err = p.Inputs(d, time.Now()); err != nil {
			return err
		}
	}

	// Явно заданные флаги перекрывают пресет
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "payment":
			in.PaymentAmount = *payment
		case "frequency":
			freq, err := calculations.ParseFrequency(*frequency)
			if err != nil {
				flagErr = err
				return
			}
			in.PaymentsPerYear = int(freq)
		case "rate":
			in.DiscountRateAnnual = *rate
		case "term":
			in.TermYears = *term
		case "residual":
			in.ResidualValue = *residual
		case "idc":
			in.InitialDirectCosts = *idc
		case "start":
			date, err := calculations.ParseDate(*start)
			if err != nil {
				flagErr = err
				return
			}
			in.StartDate = date
		}
	})
	if flagErr != nil {
		return flagErr
	}

	result, err := tools.CalculateLease(context.Background(), cfg, noop.NewTracerProvider().Tracer("cli"), in)
	if err != nil {
		return err
	}

	printResult(result, *quiet)

	if *outPath != "" {
		if err := report.WriteScheduleCSVFile(*outPath, result.Schedule); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Schedule), *outPath)
	}
	if *htmlPath != "" {
		if err := report.WriteHTMLFile(*htmlPath, result); err != nil {
			return err
		}
		fmt.Printf("Wrote report to %s\n", *htmlPath)
	}
	return nil
}

func printResult(result *calculations.LeaseResult, quiet bool) {
	cv := result.CarryingValue
	fmt.Printf("Present value of lease payments: %s\n", report.FormatMoney(cv.PresentValueOfPayments))
	fmt.Printf("Initial direct costs:            %s\n", report.FormatMoney(cv.InitialDirectCosts))
	fmt.Printf("ROU asset carrying value:        %s\n", report.FormatMoney(cv.TotalInitialValue))
	fmt.Println()

	if !quiet {
		fmt.Printf("%-6s %-12s %16s %14s\n", "month", "date", "book value", "depreciation")
		for _, e := range result.Schedule {
			fmt.Printf("%-6d %-12s %16s %14s\n",
				e.Month,
				e.Date.Format(calculations.DateLayout),
				report.FormatMoney(e.BookValue),
				report.FormatMoney(e.PeriodDepreciation),
			)
		}
		fmt.Println()
	}

	fmt.Printf("Term: %d months\n", result.Summary.TermMonths)
	fmt.Printf("Total depreciation:   %s\n", report.FormatMoney(result.Summary.TotalDepreciation))
	fmt.Printf("Monthly depreciation: %s\n", report.FormatMoney(result.Summary.MonthlyDepreciation))
}

func cmdPresets(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	presetsFile := fs.String("presets-file", cfg.PresetsFile, "Path to YAML lease presets")
	_ = fs.Parse(args)

	if *presetsFile == "" {
		return fmt.Errorf("--presets-file or LEASE_PRESETS_FILE is required")
	}
	presets, err := config.LoadPresets(*presetsFile)
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("%-22s %-11s %14s %8s %6s  %s\n", "name", "frequency", "payment", "rate", "years", "description")
	for _, p := range presets {
		in, err := p.Inputs(cfg.Defaults, now)
		if err != nil {
			return err
		}
		fmt.Printf("%-22s %-11s %14s %8.4f %6.2f  %s\n",
			p.Name, calculations.PaymentFrequency(in.PaymentsPerYear), report.FormatMoney(in.PaymentAmount),
			in.DiscountRateAnnual, in.TermYears, p.Description)
	}
	return nil
}
