package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "submit <sequence>",
		Short: "Submit a protein to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			sub, err := c.SubmitProtein(ctx, normalize(args[0]), name, description)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Protein %s (%s)\n", sub.ID, sub.Name)
			fmt.Fprintf(out, "  weight %.2f, length %d, %d fragments, %d motifs\n",
				sub.MolecularWeight, sub.SequenceLength, len(sub.Fragments), len(sub.Motifs))
			fmt.Fprintf(out, "  %s\n", sub.SequenceURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "protein name (generated when empty)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	return cmd
}

func listCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List proteins on the server, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			page, err := c.ListProteins(ctx, limit, offset)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tLENGTH\tWEIGHT")
			for _, p := range page.Proteins {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", p.ID, p.Name, p.SequenceLength, p.MolecularWeight)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d\n", len(page.Proteins), page.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of proteins to skip")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <protein-id>",
		Short: "Fetch a protein from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			p, err := c.GetProtein(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
}

func fragmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fragments <protein-id>",
		Short: "List a protein's fragments with structure and motifs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			frags, err := c.ListFragments(ctx, args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tSEQUENCE\tSTRUCTURE\tMOTIFS")
			for _, f := range frags {
				var patterns []string
				for _, m := range f.Motifs {
					patterns = append(patterns, m.Pattern)
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%v\n", f.Start, f.End, f.Sequence, f.StructureClasses, patterns)
			}
			return tw.Flush()
		},
	}
}

func sequenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence <protein-id>",
		Short: "Fetch the reconstructed sequence of a protein",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			seq, err := c.Sequence(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <protein-id>",
		Short: "Delete a protein and its fragments on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := remote(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if err := c.DeleteProtein(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
