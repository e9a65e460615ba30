package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"biodrying"
	"biodrying/export"
	"biodrying/sweep"

	"github.com/sirupsen/logrus"
)

// readScenario reads a raw scenario from a file path or an http(s) URL.
func readScenario(ctx context.Context, input string) (biodrying.RawProcessConfig, error) {
	if input == "" {
		return biodrying.RawProcessConfig{}, fmt.Errorf("biodrying: an input scenario is required")
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, input, nil)
		if err != nil {
			return biodrying.RawProcessConfig{}, fmt.Errorf("biodrying: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return biodrying.RawProcessConfig{}, fmt.Errorf("biodrying: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return biodrying.RawProcessConfig{}, fmt.Errorf("biodrying: fetching %s: %s", input, resp.Status)
		}
		return biodrying.ReadRawConfig(resp.Body)
	}

	file, err := os.Open(input)
	if err != nil {
		return biodrying.RawProcessConfig{}, fmt.Errorf("biodrying: %w", err)
	}
	defer file.Close()
	return biodrying.ReadRawConfig(file)
}

/*
Load and normalize a scenario.

	Args:
	    input: scenario file path or URL
	    ambient: optional ambient profile CSV path
	    strict: reject malformed fields instead of defaulting them

	Returns:
	    normalized configuration
*/
func loadConfig(ctx context.Context, input, ambient string, strict bool) (biodrying.ProcessConfig, error) {
	log.Printf("reading scenario `%s`", input)
	raw, err := readScenario(ctx, input)
	if err != nil {
		return biodrying.ProcessConfig{}, err
	}

	if ambient != "" {
		log.Printf("reading ambient profile `%s`", ambient)
		profile, err := biodrying.LoadAmbientProfile(ambient)
		if err != nil {
			return biodrying.ProcessConfig{}, err
		}
		raw.AmbientProfile = profile
	}

	normalize := biodrying.Normalize
	if strict {
		normalize = biodrying.NormalizeStrict
	}
	return normalize(raw)
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("biodrying: %w", err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("biodrying: %w", cerr)
	}
	return err
}

/*
Run one simulation and store it.

	Args:
	    input: scenario file path or URL
	    ambient: optional ambient profile CSV path
	    strict: reject malformed fields instead of defaulting them
	    outputDir: directory the run is stored in
	    name: run label, generated when empty
	    saveXLSX: also store a spreadsheet
	    savePlots: also render charts

	Returns:
	    stored run
*/
func run(
	ctx context.Context,
	input string,
	ambient string,
	strict bool,
	outputDir string,
	name string,
	saveXLSX bool,
	savePlots bool,
) (export.Run, error) {
	start := time.Now()

	// ---- preparation ----

	if err := export.ValidateName(name); err != nil {
		return export.Run{}, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return export.Run{}, fmt.Errorf("biodrying: %w", err)
	}

	cfg, err := loadConfig(ctx, input, ambient, strict)
	if err != nil {
		return export.Run{}, err
	}

	// ---- calculation ----

	res, err := biodrying.Run(ctx, cfg, biodrying.WithLogger(log))
	if err != nil {
		return export.Run{}, err
	}
	r := export.NewRun(name, cfg, res)
	rlog := log.WithFields(logrus.Fields{"id": r.ID, "name": r.Name})

	// ---- saving ----

	resultPath := filepath.Join(outputDir, r.Name+".csv")
	rlog.Printf("save results to `%s`", resultPath)
	if err := writeFile(resultPath, func(w io.Writer) error { return export.WriteCSV(w, res) }); err != nil {
		return r, err
	}

	if saveXLSX {
		xlsxPath := filepath.Join(outputDir, r.Name+".xlsx")
		rlog.Printf("save workbook to `%s`", xlsxPath)
		if err := writeFile(xlsxPath, func(w io.Writer) error { return export.WriteXLSX(w, r) }); err != nil {
			return r, err
		}
	}

	if savePlots {
		paths, err := export.WriteCharts(outputDir, r)
		if err != nil {
			return r, err
		}
		rlog.Printf("saved %d charts", len(paths))
	}

	rlog.Printf("elapsed_time: %v", time.Since(start))
	return r, nil
}

/*
Run an airflow sweep and store its table.

	Args:
	    input: scenario file path or URL
	    ambient: optional ambient profile CSV path
	    strict: reject malformed fields instead of defaulting them
	    outputDir: directory sweep.csv is written to
	    flowMin, flowMax, flowStep: airflow range, m3/h
	    c: criterion
	    workers: concurrent simulations, 0 for one per CPU

	Returns:
	    sweep report
*/
func runSweep(
	ctx context.Context,
	input string,
	ambient string,
	strict bool,
	outputDir string,
	flowMin, flowMax, flowStep float64,
	c sweep.Criterion,
	workers int,
) (sweep.Report, error) {
	start := time.Now()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return sweep.Report{}, fmt.Errorf("biodrying: %w", err)
	}

	flows, err := sweep.Airflows(flowMin, flowMax, flowStep)
	if err != nil {
		return sweep.Report{}, err
	}
	cfg, err := loadConfig(ctx, input, ambient, strict)
	if err != nil {
		return sweep.Report{}, err
	}

	log.Printf("sweeping %d airflows by %v", len(flows), c)
	rep, err := sweep.Run(ctx, cfg, flows, c, sweep.Options{Workers: workers, Log: log})
	if err != nil {
		return sweep.Report{}, err
	}

	sweepPath := filepath.Join(outputDir, "sweep.csv")
	log.Printf("save sweep to `%s`", sweepPath)
	if err := writeFile(sweepPath, func(w io.Writer) error { return export.WriteSweepCSV(w, rep) }); err != nil {
		return rep, err
	}

	best := rep.Best()
	log.WithFields(logrus.Fields{
		"airflow":   best.Airflow,
		c.String(): best.Value,
	}).Info("optimal airflow")
	log.Printf("elapsed_time: %v", time.Since(start))
	return rep, nil
}
