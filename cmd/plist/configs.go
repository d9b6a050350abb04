package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signadot/plist-format/go-plist/convert"
	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/format"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	NoColor  bool `cli:"name=nocolor desc='never encode with color'"`
	WireOut  bool `cli:"name=wire desc='output in compact form'"`
	Indent   int  `cli:"name=indent desc='spaces per level in pretty output'"`
	Strict   bool `cli:"name=strict desc='reject data with an odd number of hex digits'"`
	MaxDepth int  `cli:"name=maxdepth desc='maximum nesting depth of input'"`
	Gops     bool `cli:"name=gops desc='run a gops diagnostics agent'"`
	Verbose  bool `cli:"name=v desc='log progress to stderr'"`

	T bool `cli:"name=t aliases=text desc='do i/o in the text form'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	M bool `cli:"name=m aliases=msgpack desc='do i/o in msgpack'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	file *FileConfig

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// applyFile sets the options the command line left unset from the
// configuration file.
func (cfg *MainConfig) applyFile(fc *FileConfig) {
	cfg.file = fc
	cfg.WireOut = cfg.WireOut || fc.Wire
	cfg.Strict = cfg.Strict || fc.Strict
	if cfg.Indent == 0 {
		cfg.Indent = fc.Indent
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = fc.MaxDepth
	}
	if cfg.InFormat == nil {
		cfg.InFormat = fc.Input
	}
	if cfg.OutFormat == nil {
		cfg.OutFormat = fc.Output
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
}

// flagFormat returns the format given by -t, -j, -y or -m.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.T:
		return format.TextFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.M:
		return format.MsgpackFormat, true
	}
	return format.TextFormat, false
}

// inFormat returns the format to read path in.  -I wins over the format
// flags, which win over the file name suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.TextFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.flagFormat()
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.StrictData(cfg.Strict),
	}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	case cfg.file != nil && cfg.file.Color != nil:
		return *cfg.file.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readNode decodes the document at path, or standard input for "-".
func (cfg *MainConfig) readNode(cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader = cc.In
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	fmat := cfg.inFormat(path)
	theLog.Info("reading", "path", path, "format", fmat)
	n, err := convert.Decode(r, fmat, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filepath.Clean(path), err)
	}
	return n, nil
}

// writeNode encodes n to w in the output format.
func (cfg *MainConfig) writeNode(w io.Writer, n *ir.Node) error {
	fmat := cfg.outFormat()
	if fmat == format.TextFormat {
		if err := encode.Encode(n, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		if cfg.WireOut {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}
	var opts []convert.Option
	if cfg.WireOut {
		opts = append(opts, convert.Compact())
	}
	if cfg.Indent > 0 {
		opts = append(opts, convert.IndentWith(fmt.Sprintf("%*s", cfg.Indent, "")))
	}
	return convert.Encode(n, w, fmat, opts...)
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x desc='expand .[expr] and $[expr] in strings instead of evaluating an expression'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='match arg as a string'"`
	Trim   bool `cli:"name=trim desc='trim output to what the match mentions'"`

	Match *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as a string'"`
	Ops    bool `cli:"name=ops desc='show available patch ops'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line diff of the text forms'"`
	Doc     bool `cli:"name=doc desc='output the diff as a document'"`

	Diff *cli.Command
}
