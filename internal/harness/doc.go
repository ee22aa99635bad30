// Package harness provides render testing for query documents.
//
// The harness loads query documents, renders named queries in order and
// checks the SPARQL text against expectations, assertions and golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	documents:
//	  - ../queries/people.yaml
//	labels: [alice, bob]
//	renders:
//	  - query: adults
//	    expect:
//	      text: "SELECT ?x WHERE { ?x <http://example.org/age> ?age . }"
//	  - query: loop
//	    expect:
//	      error: "reference cycle"
//	assertions:
//	  - type: render_contains
//	    query: adults
//	    text: "?age"
//	  - type: final_state
//	    where: { name: adults }
//	    expect: { form: select, seq: 1 }
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - render_contains: The latest render of a query contains a fragment
//   - render_order: Fragments appear in the given order
//   - render_count: A fragment appears exactly N times
//   - final_state: Queries a catalog table and verifies expected values
//
// # Deterministic Testing
//
// Fresh blank nodes are labeled from the scenario's labels list
// (testutil.FixedLabelGenerator), render events carry a logical sequence
// number and each scenario gets its own in-memory SQLite catalog. The same
// scenario therefore always yields the same trace, which makes golden
// snapshot comparison possible.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/people.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//	    log.Println(msg)
//	}
package harness
