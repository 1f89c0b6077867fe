package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"protmotif/internal/app"
	"protmotif/internal/domain"
	"protmotif/internal/render"
)

func analyzeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analyze <sequence>",
		Short: "Analyse a sequence offline: weight, fragments, structure and motifs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := analyzer().Analyze(normalize(args[0]))
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, a)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Length:           %d\n", a.SequenceLength)
			fmt.Fprintf(out, "Molecular weight: %.2f\n", a.MolecularWeight)
			fmt.Fprintf(out, "Checksum:         %s\n", a.Checksum)
			fmt.Fprintf(out, "Fragments:        %d\n", len(a.Fragments))
			if len(a.Fragments) == 0 {
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tSEQUENCE\tSTRUCTURE\tMOTIFS")
			for _, f := range a.Fragments {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\n", f.Start, f.End, f.Sequence, f.StructureClasses, len(f.Motifs))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full analysis as JSON")
	return cmd
}

func structureCmd() *cobra.Command {
	var (
		svg   bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "structure <sequence>",
		Short: "Predict secondary structure and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := analyzer().PredictStructure(normalize(args[0]))
			if err != nil {
				return err
			}
			if svg {
				fmt.Fprintln(cmd.OutOrStdout(), render.SVG(pred.Classes))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), pred.Classes)
			fmt.Fprintln(cmd.OutOrStdout(), render.Terminal(pred.Classes, width))
			return nil
		},
	}
	cmd.Flags().BoolVar(&svg, "svg", false, "print an SVG document instead of terminal blocks")
	cmd.Flags().IntVar(&width, "width", 60, "residues per terminal row")
	return cmd
}

func motifsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motifs <sequence>",
		Short: "List motif occurrences in a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			motifs, err := analyzer().ScanMotifs(normalize(args[0]))
			if err != nil {
				return err
			}
			if len(motifs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no motifs found")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tPATTERN\tSTART\tEND\tCONFIDENCE")
			for _, m := range motifs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\n", m.Type, m.Pattern, m.Start, m.End, m.Confidence)
			}
			return tw.Flush()
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a user and print its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWire(func(w *app.Wire) error {
				u := domain.User{
					ID:        domain.UserID(domain.NewID()),
					Name:      args[0],
					CreatedAt: time.Now().UTC(),
				}
				if err := w.Users.CreateUser(cmd.Context(), u); err != nil {
					return err
				}
				logger.Info("user created", "id", u.ID, "name", u.Name)
				fmt.Fprintln(cmd.OutOrStdout(), u.ID)
				return nil
			})
		},
	})
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write JSON snapshots of all stored proteins to the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWire(func(w *app.Wire) error {
				paths, err := w.Protein.Export(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d proteins to %s\n", len(paths), w.Snapshots.Dir())
				return nil
			})
		},
	}
}

// normalize upper-cases and trims a sequence typed on the command line.
func normalize(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}
