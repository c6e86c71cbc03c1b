// Command gen-ucd generates the Unicode data tables for the ucd package.
//
// Usage:
//
//	gen-ucd [-o tables.go] UnicodeData.txt CompositionExclusions.txt
//
// UnicodeData.txt supplies the canonical combining classes and the
// decomposition mappings; CompositionExclusions.txt supplies the
// script-specific Full Composition Exclusions. Both files come from the
// Unicode Character Database. The emitted file contains one-level
// mappings only: recursive expansion and the derivation of the primary
// composition pairs happen in the ucd package itself.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

var output = flag.String("o", "tables.go", "output file")

type decomp struct {
	code   rune
	compat bool
	to     []rune
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen-ucd: ")
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatal("usage: gen-ucd [-o tables.go] UnicodeData.txt CompositionExclusions.txt")
	}

	ccc, decomps := parseUnicodeData(flag.Arg(0))
	exclusions := parseExclusions(flag.Arg(1))

	var buf bytes.Buffer
	emit(&buf, ccc, decomps, exclusions)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting output: %v", err)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// parseUnicodeData reads the combining classes and decomposition
// mappings out of UnicodeData.txt. Precomposed Hangul syllables
// (U+AC00..U+D7A3) are skipped: their decomposition is algorithmic.
func parseUnicodeData(name string) (map[rune]uint8, []decomp) {
	f, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	ccc := make(map[rune]uint8)
	var decomps []decomp

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 6 {
			continue
		}

		code := parseRune(fields[0])
		if code >= 0xAC00 && code <= 0xD7A3 {
			continue
		}

		if cl, err := strconv.Atoi(fields[3]); err == nil && cl != 0 {
			ccc[code] = uint8(cl)
		}

		if fields[5] == "" {
			continue
		}
		d := decomp{code: code}
		for _, part := range strings.Fields(fields[5]) {
			if strings.HasPrefix(part, "<") {
				d.compat = true
				continue
			}
			d.to = append(d.to, parseRune(part))
		}
		if len(d.to) > 0 {
			decomps = append(decomps, d)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	return ccc, decomps
}

// parseExclusions reads the non-commented code points out of
// CompositionExclusions.txt. Only the script-specific section matters;
// singletons and non-starter decompositions are recognized structurally
// by the ucd package, so listing them again is harmless.
func parseExclusions(name string) []rune {
	f, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var ex []rune
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ex = append(ex, parseRune(line))
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	sort.Slice(ex, func(i, j int) bool { return ex[i] < ex[j] })
	return ex
}

func parseRune(s string) rune {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Fatalf("bad code point %q: %v", s, err)
	}
	return rune(v)
}

func emit(buf *bytes.Buffer, ccc map[rune]uint8, decomps []decomp, exclusions []rune) {
	fmt.Fprintln(buf, "// Code generated by gen-ucd -o tables.go UnicodeData.txt CompositionExclusions.txt; DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package ucd")
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "type cccRange struct {")
	fmt.Fprintln(buf, "\tlo, hi rune")
	fmt.Fprintln(buf, "\tccc    uint8")
	fmt.Fprintln(buf, "}")
	fmt.Fprintln(buf)

	// Collapse the per-rune classes into contiguous runs.
	codes := make([]rune, 0, len(ccc))
	for c := range ccc {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	fmt.Fprintln(buf, "// cccRanges lists contiguous runs of scalars sharing a nonzero canonical")
	fmt.Fprintln(buf, "// combining class, sorted by lo.")
	fmt.Fprintln(buf, "var cccRanges = []cccRange{")
	for i := 0; i < len(codes); {
		lo := codes[i]
		hi := lo
		cl := ccc[lo]
		for i++; i < len(codes) && codes[i] == hi+1 && ccc[codes[i]] == cl; i++ {
			hi = codes[i]
		}
		fmt.Fprintf(buf, "\t{0x%04X, 0x%04X, %d},\n", lo, hi, cl)
	}
	fmt.Fprintln(buf, "}")
	fmt.Fprintln(buf)

	emitDecomp := func(name, doc string, compat bool) {
		fmt.Fprintln(buf, doc)
		fmt.Fprintf(buf, "var %s = map[rune][]rune{\n", name)
		for _, d := range decomps {
			if d.compat != compat {
				continue
			}
			parts := make([]string, len(d.to))
			for i, r := range d.to {
				parts[i] = fmt.Sprintf("0x%04X", r)
			}
			fmt.Fprintf(buf, "\t0x%04X: {%s},\n", d.code, strings.Join(parts, ", "))
		}
		fmt.Fprintln(buf, "}")
		fmt.Fprintln(buf)
	}

	emitDecomp("canonicalDecomp",
		"// canonicalDecomp holds one-level canonical decomposition mappings.\n"+
			"// Hangul syllables are algorithmic and intentionally absent.", false)
	emitDecomp("compatDecomp",
		"// compatDecomp holds one-level compatibility decomposition mappings for\n"+
			"// scalars that have no canonical mapping.", true)

	fmt.Fprintln(buf, "// compositionExclusions lists the script-specific Full Composition")
	fmt.Fprintln(buf, "// Exclusions, sorted. Singletons and non-starter decompositions are")
	fmt.Fprintln(buf, "// excluded structurally when the pair table is built.")
	fmt.Fprintln(buf, "var compositionExclusions = []rune{")
	for _, c := range exclusions {
		fmt.Fprintf(buf, "\t0x%04X,\n", c)
	}
	fmt.Fprintln(buf, "}")
}
