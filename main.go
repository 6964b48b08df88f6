package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sukh8282/exconsole/agent"
	"github.com/sukh8282/exconsole/config"
	"github.com/sukh8282/exconsole/logger"
)

type cfg struct {
	config.Config
}
type cli struct {
	cfg cfg
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("config-file", "", "Path to config file.")
	cmd.Flags().Int("http-port", 8080, "http port for console endpoints")
	cmd.Flags().String("storage-impl", "memory", "implementation of history storage")
	cmd.Flags().String("redis-addr", "localhost:6379", "comma separated list of redis host:port")
	cmd.Flags().String("namespace", "exconsole", "namespace used in storage")
	cmd.Flags().String("remote-endpoint", "http://localhost:5985", "remote management gateway endpoint")
	cmd.Flags().String("remote-token", "", "bearer token for the remote gateway")
	cmd.Flags().Int("remote-timeout", 30, "remote call timeout in seconds")
	cmd.Flags().Int("remote-connect-retries", 3, "retries while connecting to the remote gateway")
	cmd.Flags().String("settings-file", "exconsole-settings.yaml", "file holding operator settings")
	cmd.Flags().Int("history-limit", 100, "number of invocation records kept")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return viper.BindPFlags(cmd.Flags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	var err error

	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	viper.SetConfigFile(configFile)

	if err = viper.ReadInConfig(); err != nil {
		// it's ok if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFile != "" {
			return err
		}
	}

	c.cfg.HttpPort = viper.GetInt("http-port")
	c.cfg.StorageType = config.StorageType(viper.GetString("storage-impl"))
	c.cfg.RedisConfig.Addrs = strings.Split(viper.GetString("redis-addr"), ",")
	c.cfg.RedisConfig.Namespace = viper.GetString("namespace")
	c.cfg.RemoteConfig.Endpoint = viper.GetString("remote-endpoint")
	c.cfg.RemoteConfig.Token = viper.GetString("remote-token")
	c.cfg.RemoteConfig.TimeoutSeconds = viper.GetInt("remote-timeout")
	c.cfg.RemoteConfig.ConnectRetries = viper.GetInt("remote-connect-retries")
	c.cfg.SettingsFile = viper.GetString("settings-file")
	c.cfg.HistoryLimit = viper.GetInt("history-limit")
	c.cfg.Debug = viper.GetBool("debug")
	return logger.InitLogger(c.cfg.Debug)
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	agent, err := agent.New(c.cfg.Config)
	if err != nil {
		panic(err)
	}
	err = agent.Start()
	if err != nil {
		panic(err)
	}
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	return agent.Shutdown()
}

func main() {
	cli := &cli{}
	cmd := &cobra.Command{
		Use:     "exconsole",
		PreRunE: cli.setupConfig,
		RunE:    cli.run,
	}
	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
