package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /path/to/log.csv",
			&shellcmd{"autoplay", nil, map[string]string{"file": "/path/to/log.csv"}},
			nil},
		{"solve right",
			&shellcmd{"solve", []string{"right"}, map[string]string{}},
			nil},
		{"autoplay 50 -file foo.csv -gamelog games.yaml ",
			&shellcmd{"autoplay",
				[]string{"50"},
				map[string]string{"file": "foo.csv", "gamelog": "games.yaml"}},
			nil,
		},
		{"autoplay 50 -file",
			nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}
