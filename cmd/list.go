package cmd

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sortByMinSalary bool

var listCmd = &cobra.Command{
	Use:   "list <keyword>",
	Short: "保存済みの求人を表示します",
	Long:  `searchで保存した「キーワード.json」を読み込んで表示します。--sortを指定すると給与下限の昇順に並べ、給与の記載がない求人は末尾に表示します。`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keyword := strings.Join(args, " ")

		deps, err := newDependencies(configPath)
		if err != nil {
			log.Fatalf("初期化に失敗しました: %v", err)
		}

		out := cmd.OutOrStdout()
		if err := printVacancies(context.Background(), out, deps.listUseCase(), deps.printer(out), keyword, sortByMinSalary); err != nil {
			deps.logger.Error("求人の表示に失敗しました", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&sortByMinSalary, "sort", "s", false, "給与下限の昇順に並べ替えます")
}
