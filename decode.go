package cmdtree

import (
	"flag"
	"fmt"
	"io"

	"github.com/mfridman/xflag"
)

// Decode parses bound values into the typed flags of fs. For every flag defined in fs whose name
// is a key in m, each value is applied in order as if "--name=value" had been passed, so repeated
// keys behave like repeated flags. Keys with no matching flag are ignored. Example usage:
//
//	fs := flag.NewFlagSet("get", flag.ContinueOnError)
//	id := fs.Int("id", 0, "note id")
//	if err := cmdtree.Decode(s.Args, fs); err != nil {
//	    return err
//	}
//
// Decode only performs the basic type parsing of the flag package; range checks are up to the
// caller.
func Decode(m ArgumentMap, fs *flag.FlagSet) error {
	if fs == nil {
		return nil
	}
	var args []string
	fs.VisitAll(func(f *flag.Flag) {
		for _, v := range m[f.Name] {
			args = append(args, "--"+f.Name+"="+v)
		}
	})
	if len(args) == 0 {
		return nil
	}
	fs.SetOutput(io.Discard)
	if err := xflag.ParseToEnd(fs, args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
