package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for sep2html.
type cliFlags struct {
	browse  bool
	install bool
	local   bool
	quiet   bool
	user    string
	config  string
	pdf     bool
	help    bool
}

// parseFlags parses the command line and returns the flags plus the
// positional arguments (SEP numbers or file paths).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("sep2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.browse, "browse", "b", false, "open the generated HTML in a web browser")
	fs.BoolVarP(&f.install, "install", "i", false, "install the HTML and source files on the SEP host")
	fs.BoolVarP(&f.local, "local", "l", false, "same as --install, but copy on the local machine")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "turn off verbose messages")
	fs.StringVarP(&f.user, "user", "u", "", "username for the remote install")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVar(&f.pdf, "pdf", false, "also render each generated page to PDF")
	fs.BoolVarP(&f.help, "help", "h", false, "print this help message and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.help {
		printUsage(os.Stdout, fs)
		os.Exit(ExitSuccess)
	}
	// --local implies installing.
	if f.local {
		f.install = true
	}
	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: sep2html [options] [<seps> ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert SEP source documents to HTML. The optional arguments are")
	fmt.Fprintln(w, "SEP numbers or .txt/.md files; with no arguments every SEP file in")
	fmt.Fprintln(w, "the current directory is processed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}
