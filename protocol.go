package blush

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
)

// MDBookVersion is the mdBook release whose preprocessor format this package
// implements. Hosts in the same caret range (^MDBookVersion) are compatible.
const MDBookVersion = "0.4.52"

// HostContext is the first element of the preprocessor input: metadata about
// the mdBook invocation.
type HostContext struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MDBookVersion string          `json:"mdbook_version"`
}

// ParseInput reads the [context, book] pair mdBook writes to a preprocessor.
func ParseInput(r io.Reader) (*HostContext, *Book, error) {
	var pair []json.RawMessage
	dec := json.NewDecoder(bufio.NewReader(r))
	if err := dec.Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("%w: expected [context, book], got %d element(s)", ErrMalformedInput, len(pair))
	}

	var hostCtx HostContext
	if err := json.Unmarshal(pair[0], &hostCtx); err != nil {
		return nil, nil, fmt.Errorf("%w: context: %v", ErrMalformedInput, err)
	}

	book := &Book{}
	if err := json.Unmarshal(pair[1], book); err != nil {
		return nil, nil, err
	}
	return &hostCtx, book, nil
}

// WriteOutput writes the processed book in the form mdBook reads back.
func WriteOutput(w io.Writer, book *Book) error {
	data, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// CheckVersion reports whether hostVersion is in the caret range of
// MDBookVersion. A mismatch is not an error; an unparseable version is.
func CheckVersion(hostVersion string) (bool, error) {
	v, err := semver.StrictNewVersion(hostVersion)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, hostVersion, err)
	}
	constraint, err := semver.NewConstraint("^" + MDBookVersion)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, MDBookVersion, err)
	}
	return constraint.Check(v), nil
}
