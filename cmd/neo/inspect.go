package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HatemSelim94/NEO/internal/neo"
)

var inspectFlags struct {
	pdes    string
	name    string
	verbose bool
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a single NEO by designation or name",
	Long: `Look up one near-Earth object by primary designation (--pdes) or by IAU
name (--name) and print it. With --verbose, also list every recorded close
approach of that object.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVarP(&inspectFlags.pdes, "pdes", "p", "", "primary designation of the NEO to inspect")
	f.StringVarP(&inspectFlags.name, "name", "n", "", "IAU name of the NEO to inspect")
	f.BoolVarP(&inspectFlags.verbose, "verbose", "v", false, "also list the NEO's close approaches")

	inspectCmd.MarkFlagsOneRequired("pdes", "name")
	inspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
}

func runInspect(cmd *cobra.Command, args []string) error {
	db, err := loadDatabase()
	if err != nil {
		return err
	}

	var obj *neo.NearEarthObject
	if inspectFlags.pdes != "" {
		obj = db.GetByDesignation(inspectFlags.pdes)
	} else {
		obj = db.GetByName(inspectFlags.name)
	}

	if obj == nil {
		fmt.Println("No matching NEOs exist in the database.")
		return nil
	}

	fmt.Println(obj)
	if inspectFlags.verbose {
		for _, ca := range obj.Approaches {
			fmt.Printf("- %s\n", ca)
		}
	}
	return nil
}
