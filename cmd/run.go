package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quotientpow/internal/app"
	"github.com/abhisek/quotientpow/internal/exercise"
)

// runApp opens the store and launches the TUI. With direct set the exercise
// opens immediately instead of the welcome screen.
func runApp(cmd *cobra.Command, direct bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		EventRepo: st.EventRepo(),
		Variant:   cfg.ExerciseVariant(),
		Direct:    direct,
	}
	if cmd.Flags().Lookup("seed") != nil {
		if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
			opts.Generator = exercise.NewSeededGenerator(seed)
		}
	}

	return app.Run(opts)
}
