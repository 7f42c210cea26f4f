// Command mdlint translates a Markdown file (or stdin) to HTML.
package main

import (
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/jcorbin/mdcore"
	"github.com/jcorbin/mdcore/internal/socutil"
)

func main() {
	var (
		dangerousHTML bool
		out           = &socutil.ErrWriter{Writer: os.Stdout}
	)

	log.SetFlags(0)

	flag.BoolVar(&dangerousHTML, "dangerous-html", false,
		"allow raw HTML blocks through to the rendered output")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	src, err := ioutil.ReadAll(in)
	if err != nil {
		log.Fatal(err)
	}

	html := mdcore.Translate(src, mdcore.WithDangerousHTML(dangerousHTML))
	if _, err := io.WriteString(out, html); err != nil {
		log.Fatal(err)
	}
}
