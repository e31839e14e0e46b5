package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Audio    AudioConfig       `yaml:"audio"`
	OpenAI   OpenAIConfig      `yaml:"openai"`
	Wolfram  WolframConfig     `yaml:"wolfram"`
	Weather  WeatherConfig     `yaml:"weather"`
	News     NewsConfig        `yaml:"news"`
	Twilio   TwilioConfig      `yaml:"twilio"`
	Dropbox  DropboxConfig     `yaml:"dropbox"`
	Camera   CameraConfig      `yaml:"camera"`
	Speech   SpeechConfig      `yaml:"speech"`
	Counters CounterConfig     `yaml:"counters"`
	Contacts map[string]string `yaml:"contacts"`
	Log      LogConfig         `yaml:"log"`
}

type AudioConfig struct {
	Source        string `yaml:"source"`
	FileDir       string `yaml:"file_dir"`
	SampleRate    int    `yaml:"sample_rate"`
	ListenSeconds int    `yaml:"listen_seconds"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
}

type WolframConfig struct {
	AppID string `yaml:"app_id"`
}

type WeatherConfig struct {
	Query string `yaml:"query"`
}

type NewsConfig struct {
	FeedURL   string `yaml:"feed_url"`
	Headlines int    `yaml:"headlines"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type DropboxConfig struct {
	AccessToken string `yaml:"access_token"`
	Folder      string `yaml:"folder"`
}

type CameraConfig struct {
	MediaDir         string `yaml:"media_dir"`
	VideoSeconds     int    `yaml:"video_seconds"`
	StillCommand     string `yaml:"still_command"`
	VideoCommand     string `yaml:"video_command"`
	TranscodeCommand string `yaml:"transcode_command"`
}

type SpeechConfig struct {
	Voice string `yaml:"voice"`
	Speed int    `yaml:"speed"`
}

type CounterConfig struct {
	PhotoFile string `yaml:"photo_file"`
	VideoFile string `yaml:"video_file"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Credentials live in the environment; the file only references them.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Audio.Source == "" {
		c.Audio.Source = "microphone"
	}
	if c.Audio.FileDir == "" {
		c.Audio.FileDir = "./audio"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.ListenSeconds == 0 {
		c.Audio.ListenSeconds = 4
	}
	if c.OpenAI.Language == "" {
		c.OpenAI.Language = "en"
	}
	if c.Weather.Query == "" {
		c.Weather.Query = "current temperature in San Francisco"
	}
	if c.News.FeedURL == "" {
		c.News.FeedURL = "https://news.google.com/news/rss"
	}
	if c.News.Headlines == 0 {
		c.News.Headlines = 3
	}
	if c.Dropbox.Folder == "" {
		c.Dropbox.Folder = "/SmartGlasses"
	}
	if c.Camera.MediaDir == "" {
		c.Camera.MediaDir = "."
	}
	if c.Camera.VideoSeconds == 0 {
		c.Camera.VideoSeconds = 30
	}
	if c.Camera.StillCommand == "" {
		c.Camera.StillCommand = "libcamera-still"
	}
	if c.Camera.VideoCommand == "" {
		c.Camera.VideoCommand = "libcamera-vid"
	}
	if c.Camera.TranscodeCommand == "" {
		c.Camera.TranscodeCommand = "MP4Box"
	}
	if c.Speech.Voice == "" {
		c.Speech.Voice = "en+f3"
	}
	if c.Speech.Speed == 0 {
		c.Speech.Speed = 130
	}
	if c.Counters.PhotoFile == "" {
		c.Counters.PhotoFile = "img.txt"
	}
	if c.Counters.VideoFile == "" {
		c.Counters.VideoFile = "vid.txt"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
