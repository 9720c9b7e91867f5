// Package wireframe compiles indentation-structured wireframe markup into
// themed SVG mockups.
//
// The pipeline has three stages: Parse turns source text into a document
// tree, the layout engine assigns every element a box, and the renderer
// paints the boxes with the selected theme's visual recipes. Diagnostics
// accumulate across all three stages instead of aborting, so a broken
// document still renders everything that parsed.
//
// The one-call form:
//
//	res, err := wireframe.RenderToSVG(source, wireframe.Options{Theme: "sketch"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("mockup.svg", []byte(res.SVG), 0o644)
//
// Parse and Render are also exposed separately for tools that inspect or
// rewrite the document tree between the stages.
package wireframe
