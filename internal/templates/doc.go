// Package templates provides starter scenarios for new preview workspaces.
//
// # Available Templates
//
//   - fade: one element entering and leaving
//   - swap: content of different types replacing each other
//   - wrap: fragment children animated inside one container
//
// # Usage
//
//	tmpl, err := templates.Get("swap")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(dir, templates.Config{Name: "demo"}, false); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.Name}}            - Scenario name
//	{{.EnterClass}}      - Enter class
//	{{.ExitClass}}       - Exit class
//	{{.ExitDurationMs}}  - Exit duration in milliseconds
package templates
