package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
// サブコマンドなしで起動すると、キーワードを尋ねて検索し、対話メニューを表示します。
var rootCmd = &cobra.Command{
	Use:   "go-vacancy-collector",
	Short: "HeadHunterとSuperJobから求人を収集するツールです。",
	Long: `go-vacancy-collectorは、HeadHunterとSuperJobの求人検索APIから求人を取得し、
共通の形式に正規化してキーワードごとのJSONファイルに保存します。
保存した求人は一覧表示や給与下限での並べ替えができます。`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		in := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		fmt.Fprint(out, "検索キーワードを入力してください: ")
		if !in.Scan() {
			return
		}
		keyword := in.Text()

		deps, err := newDependencies(configPath)
		if err != nil {
			log.Fatalf("初期化に失敗しました: %v", err)
		}

		session, err := deps.searchUseCase().Run(ctx, keyword)
		if err != nil {
			deps.logger.Error("求人の検索に失敗しました", "error", err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "%d件の求人を保存しました。\n", len(session.Vacancies))

		if err := runMenu(ctx, in, out, deps.listUseCase(), deps.printer(out), session.Keyword); err != nil {
			deps.logger.Error("入力の読み込みに失敗しました", "error", err)
			os.Exit(1)
		}
	},
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "settings/vacancies.yaml", "設定ファイルのパス")
}
