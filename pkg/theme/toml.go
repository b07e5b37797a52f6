package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Header thTOMLHeader `toml:"header"`
	Rows   thTOMLRows   `toml:"rows"`
	Sort   thTOMLSort   `toml:"sort"`
	Scroll thTOMLScroll `toml:"scroll"`
	Status thTOMLStatus `toml:"status"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLHeader struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
}

type thTOMLRows struct {
	Even string `toml:"even"`
	Odd  string `toml:"odd"`
}

type thTOMLSort struct {
	Active   string `toml:"active"`
	Disabled string `toml:"disabled"`
}

type thTOMLScroll struct {
	Track string `toml:"track"`
	Thumb string `toml:"thumb"`
}

type thTOMLStatus struct {
	OK    string `toml:"ok"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		HeaderFG: tt.Header.Foreground,
		HeaderBG: tt.Header.Background,
		Border:   tt.Header.Border,

		RowEven: tt.Rows.Even,
		RowOdd:  tt.Rows.Odd,

		SortActive:   tt.Sort.Active,
		SortDisabled: tt.Sort.Disabled,

		ScrollTrack: tt.Scroll.Track,
		ScrollThumb: tt.Scroll.Thumb,

		StatusOK:    tt.Status.OK,
		StatusWarn:  tt.Status.Warn,
		StatusError: tt.Status.Error,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return LoadFromTOML(data)
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Header: thTOMLHeader{
			Foreground: t.HeaderFG,
			Background: t.HeaderBG,
			Border:     t.Border,
		},
		Rows:   thTOMLRows{Even: t.RowEven, Odd: t.RowOdd},
		Sort:   thTOMLSort{Active: t.SortActive, Disabled: t.SortDisabled},
		Scroll: thTOMLScroll{Track: t.ScrollTrack, Thumb: t.ScrollThumb},
		Status: thTOMLStatus{
			OK:    t.StatusOK,
			Warn:  t.StatusWarn,
			Error: t.StatusError,
		},
		Help: thTOMLHelp{Key: t.HelpKey, Desc: t.HelpDesc},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the name and every color are present, and that
// colors are #RRGGBB hex. All problems are reported together.
func thValidateTheme(t Theme) error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, fmt.Errorf("theme: missing required field %q", "name"))
	}
	for _, f := range thColorFields(&t) {
		switch {
		case *f.ptr == "":
			errs = append(errs, fmt.Errorf("theme: missing required field %q", f.name))
		case !thHexColorRegex.MatchString(*f.ptr):
			errs = append(errs, fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", *f.ptr, f.name))
		}
	}
	return errors.Join(errs...)
}
