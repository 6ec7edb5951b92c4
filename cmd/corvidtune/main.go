// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command corvidtune runs a Texel tuning session over the classical
// evaluation terms (pkg/search/eval/classical) against a labelled FEN
// dataset, reporting per-epoch progress and writing the resulting
// loss curve to an HTML file for inspection.
package main

import (
	"flag"
	"fmt"
	"os"

	"corvid/pkg/search/eval/classical/tuner"
)

func main() {
	dataset := flag.String("dataset", "", "path to the labelled FEN dataset (as produced by cmd/corvidbook's sibling datagen tool)")
	maxEpochs := flag.Int("epochs", 10_000, "maximum number of tuning epochs")
	batchSize := flag.Int("batch", 16384, "entries per gradient batch")
	learningRate := flag.Float64("rate", 1, "initial learning rate")
	learningDropRate := flag.Float64("rate-drop", 1, "divisor applied to the learning rate every -rate-step epochs")
	learningStepRate := flag.Int("rate-step", 250, "epochs between learning-rate drops")
	kPrecision := flag.Int("k-precision", 10, "decimal digits of precision when fitting the sigmoid scaling constant K")
	reportRate := flag.Int("report-rate", 50, "epochs between printed term-delta reports")
	flag.Parse()

	if *dataset == "" {
		fmt.Fprintln(os.Stderr, "corvidtune: -dataset is required")
		os.Exit(1)
	}

	fmt.Printf("corvidtune: loading dataset %s\n", *dataset)
	data, err := tuner.NewDataset(*dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corvidtune: loading dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("corvidtune: loaded %d entries\n", len(data))

	termTuner := tuner.Tuner{
		Config: tuner.Config{
			KPrecision: *kPrecision,

			ReportRate: *reportRate,

			LearningRate:     *learningRate,
			LearningDropRate: *learningDropRate,
			LearningStepRate: *learningStepRate,

			MaxEpochs: *maxEpochs,
			BatchSize: *batchSize,
		},

		Dataset: data,
	}

	// Tuner.Tune reports per-epoch progress with schollz/progressbar and
	// rewrites error-plot.html with the loss curve via go-echarts after
	// every epoch.
	termTuner.Tune()
}
