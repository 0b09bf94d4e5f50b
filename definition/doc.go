// Package definition loads named scan definitions from YAML, TOML or JSON
// files and compiles them into a Set.
//
// A definition pairs a template with the kinds its placeholders decode into:
//
//	scans:
//	  - name: reading
//	    template: "sensor {%s} temp={%f}C seq={%u}"
//	    types: [string, float64, uint32]
//
// Usage:
//
//	set, err := definition.LoadSet("scans.yaml")
//	if err != nil {
//	    return err
//	}
//	res, err := set.Scan("reading", "sensor north temp=21.5C seq=7")
//
// Watch reloads a file on change and delivers each compiled Set on a
// channel. Schema returns the JSON Schema of the file format.
package definition
