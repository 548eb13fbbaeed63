// Package harness provides conformance testing for the word combination engine.
//
// The harness loads scenario files, joins every word pair with a real
// engine over a rule snapshot, and checks each outcome against the
// scenario's expectations. A scenario passes when its accuracy (the share
// of passing cases) reaches its minimum accuracy.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: vowel_sandhi
//	description: "Savarna dirgha joins"
//	samasa: strict          # optional: permissive (default) or strict
//	min_accuracy: 100       # optional: percent, default 100
//	cases:
//	  - id: "1"
//	    word1: ಪುಸ್ತಕ
//	    word2: ಆಲಯ
//	    expect:
//	      result: ಪುಸ್ತಕಾಲಯ
//	      status: success
//	      stage: phonetic
//	      rule_contains: "ಅ+ಆ"
//
// Every expect field is optional; only the fields given are checked.
//
// The CSV pair format (test_id, word1, word2, expected_result, ...) is also
// accepted. A CSV file becomes a scenario named after the file, checks only
// the result, and passes at 80% accuracy.
//
// # Golden Reports
//
// Report renders a result as deterministic text. RunWithGolden compares it
// against testdata/golden/{scenario.Name}.golden. To regenerate:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/vowel_sandhi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario, snap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    fmt.Print(harness.Report(result))
//	}
package harness
