package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nrad-K/go-vacancy-collector/internal/infra"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "求人を検索してJSONファイルに保存します",
	Long:  `設定されたAPIから求人を取得し、正規化した結果を「キーワード.json」に保存します。`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keyword := strings.Join(args, " ")

		deps, err := newDependencies(configPath)
		if err != nil {
			log.Fatalf("初期化に失敗しました: %v", err)
		}

		session, err := deps.searchUseCase().Run(context.Background(), keyword)
		if err != nil {
			deps.logger.Error("求人の検索に失敗しました", "error", err)
			os.Exit(1)
		}

		path := filepath.Join(deps.cfg.OutputDir, infra.VacancyFileName(session.Keyword))
		fmt.Fprintf(cmd.OutOrStdout(), "%d件の求人を %s に保存しました。\n", len(session.Vacancies), path)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
