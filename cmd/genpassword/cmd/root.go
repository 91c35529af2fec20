package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/realgenekim/genpassword/internal/clipboard"
	"github.com/realgenekim/genpassword/internal/config"
	"github.com/realgenekim/genpassword/internal/model"
	"github.com/realgenekim/genpassword/internal/password"
	"github.com/realgenekim/genpassword/internal/service"
)

var (
	cfgFile string
	verbose bool

	simple        bool
	paranoid      bool
	count         int
	length        int
	segments      int
	segmentLength int
	noCopy        bool
	listProfiles  bool
)

var rootCmd = &cobra.Command{
	Use:   "genpassword",
	Short: "Generate safe, readable passwords",
	Long: `Generates passwords that are safe to double-click, paste into
terminals and read over the phone. Shell metacharacters, quotes and
look-alike glyphs never appear in the output.

Profiles:
  default    mixed case + digits, e.g. Kp4x_Tm9n_Bc2w_Qf7v
  simple     unambiguous lowercase + digits, e.g. mhx3_k7wp_n2vt_8qrz
  paranoid   rotating symbol separators, e.g. Kp4x.Tm9n-Bc2w^Qf7v

Examples:
  genpassword                  one password, copied to the clipboard
  genpassword -n 5 --no-copy   five passwords on stdout
  genpassword -l 30            at least 30 characters, whole segments
  genpassword -s --segments 5  five dictation-friendly segments`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "defaults file (default: ~/.config/genpassword/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report profile, length and entropy on stderr")

	rootCmd.Flags().BoolVarP(&simple, "simple", "s", false, "unambiguous lowercase + digits, easy to dictate")
	rootCmd.Flags().BoolVarP(&paranoid, "paranoid", "p", false, "rotating symbol separators")
	rootCmd.MarkFlagsMutuallyExclusive("simple", "paranoid")

	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	rootCmd.Flags().IntVarP(&length, "length", "l", 0, "total length, rounded up to whole segments")
	rootCmd.Flags().IntVar(&segments, "segments", 0, "number of segments")
	rootCmd.Flags().IntVar(&segmentLength, "segment-length", 0, "characters per segment")

	rootCmd.Flags().BoolVar(&noCopy, "no-copy", false, "do not copy the password to the clipboard")
	rootCmd.Flags().BoolVar(&listProfiles, "list", false, "show the available profiles with live samples")
}

func newGeneratorService() *service.GeneratorService {
	return service.NewGeneratorService(password.NewCatalog(), password.CryptoSource{})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defaults, err := config.LoadDefaults(cfgFile)
	if err != nil {
		return err
	}

	svc := newGeneratorService()

	if listProfiles {
		return runList(cmd, svc)
	}

	resp, err := svc.Generate(buildRequest(cmd.Flags(), defaults))
	if err != nil {
		return err
	}

	for _, pw := range resp.Passwords {
		fmt.Fprintln(cmd.OutOrStdout(), pw)
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "profile: %s, length: %d, entropy: ~%.0f bits\n",
			resp.Profile, resp.Length, resp.EntropyBits)
	}

	// Only a single password lands on the clipboard; a batch would just
	// overwrite itself.
	if !noCopy && defaults.CopyEnabled() && len(resp.Passwords) == 1 {
		if err := clipboard.Copy(resp.Passwords[0]); err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "✓ Copied to clipboard")
		} else if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "clipboard copy skipped: %v\n", err)
		}
	}

	return nil
}

// buildRequest merges flags over file defaults. Any layout flag on the
// command line takes the layout wholesale, so a defaults file can never
// conflict with what was typed.
func buildRequest(flags *pflag.FlagSet, defaults config.Defaults) model.GenerateRequest {
	req := model.GenerateRequest{
		Profile: profileName(defaults),
		Count:   count,
	}

	if flags.Changed("length") || flags.Changed("segments") || flags.Changed("segment-length") {
		if flags.Changed("length") {
			v := length
			req.Length = &v
		}
		if flags.Changed("segments") {
			v := segments
			req.Segments = &v
		}
		if flags.Changed("segment-length") {
			v := segmentLength
			req.SegmentLength = &v
		}
		return req
	}

	if defaults.Length > 0 {
		v := defaults.Length
		req.Length = &v
	}
	if defaults.Segments > 0 {
		v := defaults.Segments
		req.Segments = &v
	}
	if defaults.SegmentLength > 0 {
		v := defaults.SegmentLength
		req.SegmentLength = &v
	}
	return req
}

func profileName(defaults config.Defaults) string {
	switch {
	case simple:
		return password.ProfileSimple
	case paranoid:
		return password.ProfileParanoid
	case defaults.Profile != "":
		return defaults.Profile
	default:
		return password.ProfileDefault
	}
}

func runList(cmd *cobra.Command, svc *service.GeneratorService) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available profiles:")
	for _, info := range svc.Profiles() {
		sample, err := svc.Generate(model.GenerateRequest{Profile: info.ID})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-9s %-22s %s (~%.0f bits)\n",
			info.ID, sample.Passwords[0], info.Description, info.EntropyBits)
	}
	return nil
}
