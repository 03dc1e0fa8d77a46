package config_test

import (
	"os"
	"testing"
	"time"

	"stress-insights-api/src/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		for _, key := range []string{"INSIGHTS_CONFIG", "INSIGHTS_TABLE_NAME", "INSIGHTS_REGION", "INSIGHTS_LOG_LEVEL", "INSIGHTS_TIMEOUT_MS"} {
			os.Unsetenv(key)
		}

		Convey("Load yields the defaults", func() {
			cfg, err := config.Load()

			So(err, ShouldBeNil)
			So(cfg.TableName, ShouldEqual, "DailyInsights")
			So(cfg.Region, ShouldEqual, "eu-west-1")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Timeout(), ShouldEqual, 2*time.Second)
		})

		Convey("Environment variables override the defaults", func() {
			os.Setenv("INSIGHTS_TABLE_NAME", "InsightsStaging")
			os.Setenv("INSIGHTS_TIMEOUT_MS", "500")
			defer os.Unsetenv("INSIGHTS_TABLE_NAME")
			defer os.Unsetenv("INSIGHTS_TIMEOUT_MS")

			cfg, err := config.Load()

			So(err, ShouldBeNil)
			So(cfg.TableName, ShouldEqual, "InsightsStaging")
			So(cfg.Timeout(), ShouldEqual, 500*time.Millisecond)
			So(cfg.Region, ShouldEqual, "eu-west-1")
		})

		Convey("An empty table name is rejected", func() {
			os.Setenv("INSIGHTS_TABLE_NAME", "")
			defer os.Unsetenv("INSIGHTS_TABLE_NAME")

			_, err := config.Load()

			So(err, ShouldNotBeNil)
		})

		Convey("A non-positive timeout is rejected", func() {
			os.Setenv("INSIGHTS_TIMEOUT_MS", "-10")
			defer os.Unsetenv("INSIGHTS_TIMEOUT_MS")

			_, err := config.Load()

			So(err, ShouldNotBeNil)
		})

		Convey("A YAML file layers beneath the environment", func() {
			path := t.TempDir() + "/config.yaml"
			So(os.WriteFile(path, []byte("table_name: InsightsFromFile\nlog_level: debug\n"), 0o600), ShouldBeNil)
			os.Setenv("INSIGHTS_CONFIG", path)
			os.Setenv("INSIGHTS_TABLE_NAME", "InsightsFromEnv")
			defer os.Unsetenv("INSIGHTS_CONFIG")
			defer os.Unsetenv("INSIGHTS_TABLE_NAME")

			cfg, err := config.Load()

			So(err, ShouldBeNil)
			So(cfg.TableName, ShouldEqual, "InsightsFromEnv")
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}
