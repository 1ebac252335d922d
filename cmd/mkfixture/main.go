// mkfixture writes a synthetic intercepted-records file for tests and demos.
// Records vary in shape the way real portal responses do: amounts as numbers
// or strings, missing sections, non-array lists and a record with no case
// number.
// Usage: go run ./cmd/mkfixture --out testdata/intercepted_api_data.json --records 50 --seed 7
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/recordread"
)

var (
	cities     = []string{"Pune", "Nagpur", "Nashik", "Thane"}
	diagnoses  = []string{"A09", "J18.9", "K35.8", "N39.0"}
	procedures = []string{"Appendectomy", "Cholecystectomy", "Dialysis", "Fracture fixation"}
	statuses   = []string{"Claim Submitted", "Claim Queried", "Claim Approved", "Paid"}
	docTypes   = []string{"Discharge summary", "Final bill", "Investigation report"}
)

func main() {
	out := flag.String("out", "testdata/intercepted_api_data.json", "output JSON file")
	n := flag.Int("records", 50, "number of records to generate")
	seed := flag.Int64("seed", 1, "random seed")
	check := flag.String("check", "", "only read this file and print table row counts")
	flag.Parse()

	if *check != "" {
		if err := printStats(*check); err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	records := make([]map[string]any, 0, *n)
	for i := 0; i < *n; i++ {
		records = append(records, makeRecord(rng, i))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d records to %s\n", len(records), *out)
}

func makeRecord(rng *rand.Rand, i int) map[string]any {
	rec := map[string]any{
		"patientInfo": map[string]any{
			"name":        fmt.Sprintf("Patient %d", i),
			"globalIndex": i,
			"page":        i/10 + 1,
			"indexOnPage": i % 10,
		},
	}
	// Every 17th record has no case number and is skipped when flattened.
	if i%17 == 16 {
		rec["claim"] = map[string]any{"encounter": map[string]any{"patientname": "Unknown"}}
		return rec
	}

	total := float64(10000 + rng.Intn(90000))
	approved := total * (0.6 + 0.4*rng.Float64())
	claim := map[string]any{
		"casenumber":    fmt.Sprintf("CASE/%06d", 100000+i),
		"admissiondate": fmt.Sprintf("%02d/03/2024", 1+rng.Intn(10)),
		"dischargedate": fmt.Sprintf("%02d/03/2024", 12+rng.Intn(10)),
		"encounter": map[string]any{
			"patientnumber": fmt.Sprintf("PN%05d", i),
			"patientname":   fmt.Sprintf("Patient %d", i),
			"gender":        []string{"Male", "Female"}[rng.Intn(2)],
			"providername":  "General Hospital, Pune",
			"patientcontacts": []map[string]any{
				{"contactnumber": fmt.Sprintf("98%08d", rng.Intn(100000000))},
			},
			"patientaddress": []map[string]any{{
				"addressline1": fmt.Sprintf("%d Station Road", 1+rng.Intn(200)),
				"city":         cities[rng.Intn(len(cities))],
				"state":        "Maharashtra",
				"pincode":      411000 + rng.Intn(100),
			}},
		},
		"amount": map[string]any{
			"totalamount":    amount(rng, total),
			"amountapproved": amount(rng, float64(int(approved))),
			"calculatedamount": []map[string]any{{
				"amount":         total,
				"netamount":      approved,
				"approvedfactor": []string{"100%", "75%", "50%"}[rng.Intn(3)],
			}},
		},
		"diagnosis": []map[string]any{{
			"sno":  1,
			"code": diagnoses[rng.Intn(len(diagnoses))],
			"type": "Primary",
		}},
		"treatments": []map[string]any{{
			"sno":           1,
			"procedurename": procedures[rng.Intn(len(procedures))],
			"amount":        total,
		}},
	}
	rec["claim"] = claim

	var logs []map[string]any
	for j := 0; j < 1+rng.Intn(4); j++ {
		logs = append(logs, map[string]any{
			"sno":    j + 1,
			"status": statuses[rng.Intn(len(statuses))],
			"user":   "cpd",
		})
	}
	rec["log"] = logs

	// Some portals return an object instead of an empty list.
	if i%5 == 4 {
		rec["payment"] = map[string]any{"message": "no payments"}
	} else {
		rec["payment"] = []map[string]any{{
			"paymenttype":       "TDS",
			"transactionamount": int(approved) / 10,
			"transactiondate":   fmt.Sprintf("%02d/04/2024", 1+rng.Intn(28)),
			"paymentstatus":     "Settled",
		}}
	}

	doc := map[string]any{"sno": 1, "doctype": docTypes[rng.Intn(len(docTypes))], "docname": fmt.Sprintf("doc-%d.pdf", i)}
	if i%3 == 0 {
		claim["encounter"].(map[string]any)["documents"] = []map[string]any{doc}
	} else {
		rec["document"] = []map[string]any{doc}
	}
	return rec
}

// amount returns v as a number or, for some records, as a string the way
// several portal versions send it.
func amount(rng *rand.Rand, v float64) any {
	if rng.Intn(4) == 0 {
		return fmt.Sprintf("%.0f", v)
	}
	return v
}

func printStats(path string) error {
	fr, err := recordread.ReadFile(path, zerolog.Nop())
	if err != nil {
		return err
	}
	tables := flatten.Flatten(fr.Records, flatten.Options{DateLayout: "02/01/2006"})
	fmt.Printf("File:     %s\nSHA-256:  %s\nRecords:  %d (%d rejected, %d skipped)\n",
		path, fr.SHA256, len(fr.Records), fr.Rejected, tables.Skipped)
	for _, t := range model.KnownTables {
		fmt.Printf("  %-11s %6d rows\n", t, tables.Count(t))
	}
	return nil
}
