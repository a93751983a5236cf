// Package display renders everything missfind prints to the console.
//
// A Renderer wraps an io.Writer and a color switch. Callers decide whether
// color is wanted (terminal detection, --no-color, config) and the Renderer
// never inspects the writer itself.
//
// # Reports
//
//	r := display.NewRenderer(os.Stdout, true)
//	r.Report(report, showFound)
//
// prints the found/missing counts followed by the chosen list, one term per
// line in input order. YAML renders the same report as a YAML document.
//
// # Listings
//
// Listing prints a directory listing with the 1-based indices used by
// selection expressions. The compact layout packs entries into columns sized
// by display width; the verbose layout prints one entry per line.
//
// # Warnings
//
//	r.Warning(display.Warning{
//	    Title:   "Selection clause",
//	    Message: `range "d.txt-a.txt" starts after it ends`,
//	})
package display
