// Command generate writes a synthetic EMBOSS dataset as a wide-format
// CSV, for seeding the service or demos without a real export.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vtiwari/recovery-insights/internal/synthetic"
)

func main() {
	players := flag.Int("players", 20, "number of players to generate")
	days := flag.Int("days", 90, "days of history ending today")
	out := flag.String("out", "data/emboss.csv", "output path, '-' for stdout")
	flag.Parse()

	series := synthetic.Generate(*players, *days)

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			logrus.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := synthetic.WriteCSV(w, series); err != nil {
		logrus.Fatalf("Failed to write dataset: %v", err)
	}

	records := 0
	for _, s := range series {
		records += len(s.Records)
	}
	logrus.WithFields(logrus.Fields{
		"players": len(series),
		"records": records,
		"out":     *out,
	}).Info("Synthetic dataset written")
}
