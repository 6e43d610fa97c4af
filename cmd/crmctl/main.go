// crmctl is the operator CLI: seed demo data into a user's workspace and
// sweep for purchase orders whose client or property has been deleted.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"estatecrm_backend/internal/linkage"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/seed"
)

var userID uint

func connect() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	database.InitDB(dbURL)
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a sample client linked to the user's first property",
		RunE: func(cmd *cobra.Command, args []string) error {
			connect()
			return seed.SeedSampleData(database.GetDB(), userID)
		},
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Report purchase orders referencing deleted clients or properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			connect()

			orphans, err := linkage.SweepOrphanedOrders(database.GetDB(), userID)
			if err != nil {
				return err
			}

			if len(orphans) == 0 {
				fmt.Println("No orphaned orders found.")
				return nil
			}

			fmt.Printf("%d orphaned order(s):\n", len(orphans))
			for _, o := range orphans {
				fmt.Printf("  order %d: client %d, property %d, status %s\n",
					o.ID, o.ClientID, o.PropertyID, o.Status)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:          "crmctl",
		Short:        "EstateCRM operations toolbox",
		SilenceUsage: true,
	}
	root.PersistentFlags().UintVar(&userID, "user", 1, "user id to operate on")

	root.AddCommand(newSeedCmd())
	root.AddCommand(newSweepCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
