package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	montyhall "github.com/carlotadelriego/MontyHallCuantico"
)

func main() {
	trials := flag.Int("trials", 100_000, "trials per regime")
	seed := flag.Int64("seed", 0, "random seed; 0 draws one from crypto/rand")
	workers := flag.Int("workers", 0, "worker goroutines; 0 uses all CPUs")
	regimeName := flag.String("regime", "", "run a single regime (classical, quantum_no_measurement, quantum_with_measurement); empty runs all three")
	flag.Parse()

	runSeed := *seed
	if runSeed == 0 {
		drawn, err := montyhall.NewSeed()
		if err != nil {
			log.Fatal(err)
		}
		runSeed = drawn
	}

	config := montyhall.NewConfig()
	if *workers > 0 {
		config.Workers = *workers
	}

	estimates, err := run(runSeed, *trials, *regimeName, config)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("seed %d, %d trials per regime\n", runSeed, *trials)
	fmt.Println(renderTable(estimates))
}

func run(seed int64, trials int, regimeName string, config *montyhall.Config) ([]montyhall.Estimate, error) {
	if regimeName == "" {
		comparison, err := montyhall.CompareRegimes(seed, trials, config)
		if err != nil {
			return nil, err
		}
		return comparison.Estimates, nil
	}

	regime, err := montyhall.ParseRegime(regimeName)
	if err != nil {
		return nil, err
	}
	estimate, err := montyhall.NewEstimator(seed, config).Estimate(regime, trials)
	if err != nil {
		return nil, err
	}
	return []montyhall.Estimate{estimate}, nil
}

func renderTable(estimates []montyhall.Estimate) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("REGIME", "TRIALS", "STAY", "SWITCH", "STAY REF", "SWITCH REF")

	for _, e := range estimates {
		refStay, refSwitch := montyhall.ReferenceProbabilities(e.Regime)
		t.Row(
			e.Regime.String(),
			fmt.Sprintf("%d", e.Tally.Trials),
			fmt.Sprintf("%.4f ± %.4f", e.StayProbability, e.StayStdErr),
			fmt.Sprintf("%.4f ± %.4f", e.SwitchProbability, e.SwitchStdErr),
			fmt.Sprintf("%.4f", refStay),
			fmt.Sprintf("%.4f", refSwitch),
		)
	}

	return t.String()
}
