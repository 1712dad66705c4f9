package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sampath-kumaramd/mathlearn-project/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored student profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd)
	},
}

func init() {
	resetCmd.Flags().String("student", "", "Delete a single student's profile")
	resetCmd.Flags().Bool("all", false, "Delete every stored profile")
}

func runReset(cmd *cobra.Command) error {
	studentID, _ := cmd.Flags().GetString("student")
	all, _ := cmd.Flags().GetBool("all")
	if studentID == "" && !all {
		return fmt.Errorf("pass --student <id> or --all")
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return err
		}
		dbPath = p
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	repo := st.ProfileRepo()
	ctx := cmd.Context()

	if studentID != "" {
		if err := repo.Delete(ctx, studentID); err != nil {
			return err
		}
		fmt.Printf("Deleted profile for %s\n", studentID)
		return nil
	}

	ids, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
	}
	fmt.Printf("Deleted %d profile(s)\n", len(ids))
	return nil
}
