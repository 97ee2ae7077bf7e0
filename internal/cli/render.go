package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorgraph/pkg/cache"
	"github.com/matzehuels/anchorgraph/pkg/errors"
	"github.com/matzehuels/anchorgraph/pkg/io"
	"github.com/matzehuels/anchorgraph/pkg/render"
	"github.com/matzehuels/anchorgraph/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file, "-" for stdout; derived from the input when empty
	format   string // dot, svg or png
	detailed bool   // geometry in node labels
	chains   bool   // highlight chains
	noCache  bool   // bypass the render cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>...",
		Short: "Render the connection graph of one or more scenes",
		Long: `Render draws every widget of a scene as a node and every connected anchor
as an edge labelled with both anchor types and the margin.

Output defaults to the scene path with the format's extension. Rendered
files are cached by scene content and options.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if !flags.Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			if !flags.Changed("chains") {
				opts.chains = c.Config.Render.Chains
			}
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			if len(args) > 1 {
				if opts.output != "" {
					return errors.New(errors.ErrCodeInvalidPath, "--output needs a single scene")
				}
				if slices.Contains(args, "-") {
					return errors.New(errors.ErrCodeInvalidPath, "stdin needs a single scene")
				}
			}
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (- for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", render.FormatSVG, "output format: "+strings.Join(renderFormats(), ", "))
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind and geometry in node labels")
	cmd.Flags().BoolVar(&opts.chains, "chains", true, "highlight chains")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormat)

	return cmd
}

func renderFormats() []string { return render.Formats }

// outputPath derives the output file from the input when none is given.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender renders each input in turn, sharing one cache.
func (c *CLI) runRender(cmd *cobra.Command, inputs []string, opts renderOpts) error {
	ch, err := c.newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, input := range inputs {
		if err := c.renderOne(cmd, ch, input, opts); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) renderOne(cmd *cobra.Command, ch cache.Cache, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := sceneLogger(ctx, input)

	var (
		raw []byte
		err error
	)
	if input == "-" {
		var buf bytes.Buffer
		_, err = buf.ReadFrom(cmd.InOrStdin())
		raw = buf.Bytes()
	} else {
		raw, err = os.ReadFile(input)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}

	out := outputPath(opts.output, input, opts.format)
	if out != "-" {
		if err := errors.ValidatePath(out); err != nil {
			return err
		}
	}

	key := newKeyer().RenderKey(cache.SceneHash(raw), cache.RenderKeyOpts{
		Format:   opts.format,
		Detailed: opts.detailed,
		Chains:   opts.chains,
	})
	data, cached, err := ch.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}

	var widgets, connections int
	if !cached {
		s, err := io.ReadScene(ctx, bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("load scene %s: %w", input, err)
		}
		widgets, connections = len(s.Widgets()), connectionCount(s)

		data, err = c.renderScene(ctx, s, opts)
		if err != nil {
			return err
		}
		if err := c.storeRender(ctx, ch, key, data); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}

	if out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	w := cmd.ErrOrStderr()
	printSuccess(w, "Rendered %s", opts.format)
	printStats(w, widgets, connections, cached)
	printFile(w, out)
	if opts.format == render.FormatDOT {
		printNextStep(w, "Render it with Graphviz", "dot -Tsvg "+out)
	}
	return nil
}

// renderScene runs the Graphviz renderer, showing a spinner for the formats
// that need a layout pass.
func (c *CLI) renderScene(ctx context.Context, s *io.Scene, opts renderOpts) ([]byte, error) {
	nopts := nodelink.Options{Detailed: opts.detailed, Chains: opts.chains}
	if opts.format == render.FormatDOT {
		return nodelink.Render(ctx, s.Root, opts.format, nopts)
	}

	sp := newSpinner(ctx, os.Stderr, "Running Graphviz...")
	sp.Start()
	data, err := nodelink.Render(ctx, s.Root, opts.format, nopts)
	if err != nil {
		sp.StopWithError("Graphviz failed")
		return nil, fmt.Errorf("render %s: %w", opts.format, err)
	}
	sp.Stop()
	return data, nil
}

func (c *CLI) storeRender(ctx context.Context, ch cache.Cache, key string, data []byte) error {
	ttl, err := c.Config.CacheTTL()
	if err != nil {
		return err
	}
	return ch.Set(ctx, key, data, ttl)
}
