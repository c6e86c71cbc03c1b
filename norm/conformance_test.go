package norm

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xnorm "golang.org/x/text/unicode/norm"

	"github.com/boxesandglue/textnorm/internal/testutil"
)

// conformanceCase is one line of the NormalizationTest format:
// source; NFC; NFD; NFKC; NFKD.
type conformanceCase struct {
	line string
	c    [5]string
}

func parseConformanceFile(t *testing.T, name string) []conformanceCase {
	t.Helper()

	f, err := os.Open(testutil.MustFindTestData(name))
	require.NoError(t, err)
	defer f.Close()

	var cases []conformanceCase
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}

		fields := strings.Split(line, ";")
		require.GreaterOrEqual(t, len(fields), 5, "short line %q", line)

		var cc conformanceCase
		cc.line = line
		for i := 0; i < 5; i++ {
			var sb strings.Builder
			for _, hex := range strings.Fields(fields[i]) {
				v, err := strconv.ParseUint(hex, 16, 32)
				require.NoError(t, err, "bad scalar in %q", line)
				sb.WriteRune(rune(v))
			}
			cc.c[i] = sb.String()
		}
		cases = append(cases, cc)
	}
	require.NoError(t, sc.Err())
	return cases
}

// TestConformance runs the invariant matrix of the Unicode normalization
// conformance test over the checked-in excerpt:
//
//	c2 == NFC(c1) == NFC(c2) == NFC(c3)
//	c4 == NFC(c4) == NFC(c5)
//	c3 == NFD(c1) == NFD(c2) == NFD(c3)
//	c5 == NFD(c4) == NFD(c5)
//	c4 == NFKC(cX) and c5 == NFKD(cX) for every column
func TestConformance(t *testing.T) {
	cases := parseConformanceFile(t, "NormalizationTest-excerpt.txt")
	require.NotEmpty(t, cases)

	for _, cc := range cases {
		c1, c2, c3, c4, c5 := cc.c[0], cc.c[1], cc.c[2], cc.c[3], cc.c[4]

		for _, x := range []string{c1, c2, c3} {
			require.Equal(t, c2, NFC.String(x), "NFC invariant on %q", cc.line)
			require.Equal(t, c3, NFD.String(x), "NFD invariant on %q", cc.line)
		}
		for _, x := range []string{c4, c5} {
			require.Equal(t, c4, NFC.String(x), "NFC(c4/c5) invariant on %q", cc.line)
			require.Equal(t, c5, NFD.String(x), "NFD(c4/c5) invariant on %q", cc.line)
		}
		for _, x := range cc.c {
			require.Equal(t, c4, NFKC.String(x), "NFKC invariant on %q", cc.line)
			require.Equal(t, c5, NFKD.String(x), "NFKD invariant on %q", cc.line)
		}
	}
}

// TestConformanceExpectations cross-checks the excerpt's expected columns
// against golang.org/x/text, so a typo in the testdata cannot silently
// bless a wrong implementation.
func TestConformanceExpectations(t *testing.T) {
	cases := parseConformanceFile(t, "NormalizationTest-excerpt.txt")

	for _, cc := range cases {
		require.Equal(t, xnorm.NFC.String(cc.c[0]), cc.c[1], "NFC column of %q", cc.line)
		require.Equal(t, xnorm.NFD.String(cc.c[0]), cc.c[2], "NFD column of %q", cc.line)
		require.Equal(t, xnorm.NFKC.String(cc.c[0]), cc.c[3], "NFKC column of %q", cc.line)
		require.Equal(t, xnorm.NFKD.String(cc.c[0]), cc.c[4], "NFKD column of %q", cc.line)
	}
}

// TestCrossCheck compares the four forms against golang.org/x/text over
// the shared corpus.
func TestCrossCheck(t *testing.T) {
	for _, s := range corpus {
		require.Equal(t, xnorm.NFC.String(s), NFC.String(s), "NFC(%q)", s)
		require.Equal(t, xnorm.NFD.String(s), NFD.String(s), "NFD(%q)", s)
		require.Equal(t, xnorm.NFKC.String(s), NFKC.String(s), "NFKC(%q)", s)
		require.Equal(t, xnorm.NFKD.String(s), NFKD.String(s), "NFKD(%q)", s)
	}
}
