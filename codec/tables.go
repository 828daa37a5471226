package codec

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// PadChar terminates standard-alphabet output to a multiple of 4 symbols.
	PadChar = '='

	// invalid marks decode table entries outside the alphabet. Symbol values
	// are 0-63, so 0xFF is safely distinguishable.
	invalid = 0xFF
)

// Encoding maps 6-bit values to alphabet symbols for one base64 variant.
// The two package-level instances are immutable; Encode functions only
// read them.
type Encoding struct {
	symbols [64]byte
	padded  bool
}

// Padded reports whether the variant emits '=' padding.
func (e *Encoding) Padded() bool {
	return e.padded
}

// Decoding maps input bytes to 6-bit values for one decode variant, with
// the invalid sentinel everywhere outside the accepted alphabet.
type Decoding struct {
	values [256]byte
	name   string
	padOK  bool
}

// Name returns the variant name ("std", "url" or "mix").
func (d *Decoding) Name() string {
	return d.name
}

// AcceptsPadding reports whether the variant tolerates trailing '='.
// The URL-safe variant does not: its encoder never emits padding, so a
// pad there marks input from the wrong alphabet.
func (d *Decoding) AcceptsPadding() bool {
	return d.padOK
}

// StdEncoding is the standard RFC 4648 alphabet with '+', '/' and padding.
var StdEncoding = &Encoding{symbols: symbolTable(stdAlphabet), padded: true}

// URLEncoding is the URL-safe RFC 4648 alphabet with '-', '_' and no padding.
var URLEncoding = &Encoding{symbols: symbolTable(urlAlphabet), padded: false}

// StdDecoding accepts only the standard alphabet, padded.
var StdDecoding = &Decoding{values: valueTable(stdAlphabet), name: "std", padOK: true}

// URLDecoding accepts only the URL-safe alphabet, unpadded.
var URLDecoding = &Decoding{values: valueTable(urlAlphabet), name: "url"}

// MixDecoding is the union of the two: position 62 accepts '+' and '-',
// position 63 accepts '/' and '_'. It cannot tell which alphabet produced
// its input, and tolerates padding so that either encoder's output decodes.
var MixDecoding = &Decoding{values: valueTable(stdAlphabet, urlAlphabet), name: "mix", padOK: true}

func symbolTable(alphabet string) [64]byte {
	var tbl [64]byte
	copy(tbl[:], alphabet)
	return tbl
}

func valueTable(alphabets ...string) [256]byte {
	var tbl [256]byte
	for i := range tbl {
		tbl[i] = invalid
	}
	for _, alphabet := range alphabets {
		for v := 0; v < len(alphabet); v++ {
			tbl[alphabet[v]] = byte(v)
		}
	}
	return tbl
}
