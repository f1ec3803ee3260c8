package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/loader/csvloader"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/render"
	"github.com/vfg2006/business-advisor-api/internal/usecases/pipeline"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	file := flag.String("file", cfg.Loader.CSVPath, "arquivo CSV com os registros diários")
	asJSON := flag.Bool("json", false, "imprime o resultado completo em JSON")
	flag.Parse()

	log.Setup(cfg.App.LogLevel)

	if err := run(*file, *asJSON); err != nil {
		logrus.WithError(err).Error("advisor: falha ao processar registros")
		os.Exit(1)
	}
}

func run(file string, asJSON bool) error {
	records, err := csvloader.Load(file)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(records)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := utils.PrettyJson(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(render.Result(result))
	return nil
}
