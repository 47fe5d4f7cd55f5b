package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/investor-registry/internal/config"
	"github.com/investor-registry/internal/db"
	"github.com/investor-registry/internal/web"
)

var (
	configPath string
	schemaPath string
	debugFlag  bool
)

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "registry",
		Short: "Investor registry migration pipeline",
		Long:  `Migrates investor records from a spreadsheet source into a deduplicated, schema-conformant registry dataset`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "schema.yaml", "path to schema.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", config.GetEnvBool("REGISTRY_DEBUG", false), "enable debug tracing")

	rootCmd.AddCommand(createIngestCmd())
	rootCmd.AddCommand(createStandardizeCmd())
	rootCmd.AddCommand(createValidateCmd())
	rootCmd.AddCommand(createMergeCmd())
	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createRunCmd())
	rootCmd.AddCommand(createExportDBCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Read the source workbook and write the raw CSV snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runIngest(cfg)
		},
	}
}

func createStandardizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standardize",
		Short: "Normalize the raw snapshot into the standardized investors table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runStandardize(cfg)
		},
	}
}

func createValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check standardized rows for data-quality issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runValidate(cfg)
		},
	}
}

func createMergeCmd() *cobra.Command {
	var audit bool
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Deduplicate standardized investors into the merged dataset",
		Long:  `Clusters standardized rows with the configured matching rule, resolves each cluster by majority vote and writes the merged dataset plus the row-to-investor map`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			sch, err := config.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			return runMerge(cfg, sch, audit)
		},
	}
	cmd.Flags().BoolVar(&audit, "audit", false, "record the merge run to Postgres")
	return cmd
}

func createBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the registry dataset from the merged investors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			sch, err := config.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			return runBuild(cfg, sch)
		},
	}
}

func createRunCmd() *cobra.Command {
	var audit bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the whole pipeline: ingest, standardize, merge, build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			sch, err := config.LoadSchema(schemaPath)
			if err != nil {
				return err
			}

			if err := runIngest(cfg); err != nil {
				return err
			}
			if err := runStandardize(cfg); err != nil {
				return err
			}
			if err := runMerge(cfg, sch, audit); err != nil {
				return err
			}
			return runBuild(cfg, sch)
		},
	}
	cmd.Flags().BoolVar(&audit, "audit", false, "record the merge run to Postgres")
	return cmd
}

func createExportDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-db",
		Short: "Load the merged dataset and row map into Postgres for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runExportDB(cfg)
		},
	}
}

func createServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the review API over the exported dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			server := web.NewServer(conn.DB, addr)
			log.Printf("review API listening on %s", addr)
			return server.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM merged_investor").Scan(&count); err != nil {
				log.Printf("merged dataset not exported yet: %v", err)
			} else {
				fmt.Printf("Merged investors loaded: %d\n", count)
			}
			return nil
		},
	}
}
