package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/apexhire/screener/internal/logger"
	"github.com/apexhire/screener/internal/scoring"
	"github.com/apexhire/screener/internal/screening"
)

const (
	PromptShowResults = "Show full results"
	PromptDumpToFile  = "Dump results to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var batchPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowResults, PromptDumpToFile, PromptExit},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every resume in a directory against every job description in another",
	Run: func(cmd *cobra.Command, _ []string) {
		runBatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("resumes", "r", "", "directory with resume files")
	batchCmd.Flags().StringP("jobs", "b", "", "directory with job description files")
	batchCmd.Flags().StringP("output", "o", "", "write the batch summary to this file")
	batchCmd.Flags().BoolP("auto-approve", "y", false, "do not prompt after the batch completes")

	batchCmd.MarkFlagRequired("resumes")
	batchCmd.MarkFlagRequired("jobs")
}

func runBatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the screener batch", zap.String("version", version))

	engine, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the scoring engine", zap.Error(err))
	}

	resumes, err := loadResumeDir(cmd.Flag("resumes").Value.String())
	if err != nil {
		logger.Fatal("loading resumes", zap.Error(err))
	}

	jobs, err := loadJobsDir(cmd.Flag("jobs").Value.String(), logger)
	if err != nil {
		logger.Fatal("loading job descriptions", zap.Error(err))
	}

	if len(resumes) == 0 {
		logger.Info("exiting", zap.String("reason", "no resume files found"))
		return
	}

	if len(jobs) == 0 {
		logger.Info("exiting", zap.String("reason", "no job description files found"))
		return
	}

	logger.Info("running the cross-product",
		zap.Int("resumes", len(resumes)),
		zap.Int("jobs", len(jobs)),
	)

	summary := scoring.NewBatch(engine, config.Concurrency, logger).Run(ctx, resumes, jobs)

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := summary.DumpToFile(output); err != nil {
			logger.Fatal("writing the batch summary", zap.Error(err))
		}
		logger.Info("batch summary written", zap.String("filename", output))
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printSummary(summary)
		return
	}

	for {
		_, action, err := batchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleBatchAction(action, summary, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleBatchAction(action string, summary *screening.BatchSummary, logger *zap.Logger) error {
	switch action {
	case PromptShowResults:
		printSummary(summary)
		return nil
	case PromptDumpToFile:
		filename, err := summary.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printSummary(summary *screening.BatchSummary) {
	pretty, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(pretty))
}
