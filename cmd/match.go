package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/apexhire/screener/internal/logger"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a single resume against a single job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "path to the resume file")
	matchCmd.Flags().StringP("job", "b", "", "path to the job description file (json or plain text)")
	matchCmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")

	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("job")
}

func runMatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	engine, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the scoring engine", zap.Error(err))
	}

	resumePath := cmd.Flag("resume").Value.String()
	jobPath := cmd.Flag("job").Value.String()

	job, err := loadJob(jobPath)
	if err != nil {
		logger.Fatal("loading the job description", zap.Error(err))
	}

	resume := loadResume(resumePath)

	logger.Info("scoring resume against job",
		zap.String("resume", resume.Identifier),
		zap.String("job", job.Title),
	)

	result := engine.Match(ctx, resume, job)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding the result", zap.Error(err))
	}

	if output := cmd.Flag("output").Value.String(); output != "" {
		if err := os.WriteFile(output, append(pretty, '\n'), 0o644); err != nil {
			logger.Fatal("writing the result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
		return
	}

	fmt.Println(string(pretty))
}
