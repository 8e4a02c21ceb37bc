package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prestige_gtm/pkg/core/config"
	"prestige_gtm/pkg/core/report"
)

// calculatorURL is the toolbar link baked into exported HTML reports.
const calculatorURL = "http://127.0.0.1:8080/"

func main() {
	configPath := flag.String("config", "", "YAML config path")
	outPath := flag.String("out", "report.md", "Output Markdown file (e.g., report.md)")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("Prestige Fragrance GTM v%s\n", report.Version)
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Println("Error: -config is required unless -version is used")
		flag.Usage()
		os.Exit(2)
	}

	scenario, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range scenario.Warnings() {
		fmt.Printf("Warning: %s\n", warning)
	}

	rep := report.Build(scenario)
	out := report.RenderMarkdown(rep, true)

	if err := os.WriteFile(*outPath, []byte(out), 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	body, err := report.RenderHTML(out)
	if err != nil {
		fmt.Printf("Error rendering HTML: %v\n", err)
		os.Exit(1)
	}
	htmlPath := strings.TrimSuffix(*outPath, filepath.Ext(*outPath)) + ".html"
	if err := os.WriteFile(htmlPath, []byte(report.WrapPage(body, rep.GeneratedAt, calculatorURL)), 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", htmlPath, err)
		os.Exit(1)
	}

	fmt.Println(out)
	fmt.Printf("\n(Also wrote HTML → %s)\n", htmlPath)
}
