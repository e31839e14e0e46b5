package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"smart-glasses/internal/domain"
)

const listeningMarker = "..."

// Deps are the collaborators the session loop drives. Everything behind
// these interfaces is opaque to the loop.
type Deps struct {
	Recorder    Recorder
	Transcriber Transcriber
	Speaker     Speaker
	Display     Display
	Knowledge   Answerer
	News        HeadlineFetcher
	SMS         Sender
	Camera      Camera
	Transcoder  Transcoder
	Uploader    Uploader
	Contacts    *domain.Directory
	PhotoCount  Counter
	VideoCount  Counter
	Logger      *slog.Logger
}

type Options struct {
	MediaDir      string
	WeatherQuery  string
	HeadlineCount int
	VideoWindow   time.Duration
	HeadlinePause time.Duration
}

// Assistant is the session loop: greet once, then capture, transcribe,
// dispatch and execute one utterance at a time until an exit intent.
// Every per-cycle failure is converted into a spoken/displayed message;
// nothing recoverable ever aborts the loop.
type Assistant struct {
	recorder    Recorder
	transcriber Transcriber
	speaker     Speaker
	display     Display
	knowledge   Answerer
	news        HeadlineFetcher
	sms         Sender
	camera      Camera
	transcoder  Transcoder
	uploader    Uploader
	contacts    *domain.Directory
	photoCount  Counter
	videoCount  Counter
	logger      *slog.Logger

	mediaDir      string
	weatherQuery  string
	headlineCount int
	videoWindow   time.Duration
	headlinePause time.Duration

	now func() time.Time
}

func NewAssistant(deps Deps, opts Options) *Assistant {
	if opts.WeatherQuery == "" {
		opts.WeatherQuery = "current temperature in San Francisco"
	}
	if opts.HeadlineCount <= 0 {
		opts.HeadlineCount = 3
	}
	if opts.VideoWindow <= 0 {
		opts.VideoWindow = 30 * time.Second
	}
	if opts.HeadlinePause <= 0 {
		opts.HeadlinePause = time.Second
	}
	return &Assistant{
		recorder:      deps.Recorder,
		transcriber:   deps.Transcriber,
		speaker:       deps.Speaker,
		display:       deps.Display,
		knowledge:     deps.Knowledge,
		news:          deps.News,
		sms:           deps.SMS,
		camera:        deps.Camera,
		transcoder:    deps.Transcoder,
		uploader:      deps.Uploader,
		contacts:      deps.Contacts,
		photoCount:    deps.PhotoCount,
		videoCount:    deps.VideoCount,
		logger:        deps.Logger,
		mediaDir:      opts.MediaDir,
		weatherQuery:  opts.WeatherQuery,
		headlineCount: opts.HeadlineCount,
		videoWindow:   opts.VideoWindow,
		headlinePause: opts.HeadlinePause,
		now:           time.Now,
	}
}

func (a *Assistant) Run(ctx context.Context) error {
	if err := a.recorder.Start(ctx); err != nil {
		return fmt.Errorf("starting recorder: %w", err)
	}
	defer a.recorder.Stop()

	a.greet(ctx)
	a.logger.Info("assistant ready, listening", "recorder", a.recorder.Name())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		done, err := a.cycle(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			a.logger.Error("command cycle", "error", err)
			continue
		}
		if done {
			a.logger.Info("exit requested, ending session")
			return nil
		}
	}
}

// cycle runs one capture-dispatch-execute pass. The bool result reports
// whether an exit intent terminated the session.
func (a *Assistant) cycle(ctx context.Context) (bool, error) {
	a.draw("")

	text, err := a.listen(ctx)
	if err != nil {
		return false, err
	}
	if text == "" {
		// Failed or silent capture: re-prompt by capturing again. The
		// dispatcher is never invoked for an empty transcript.
		return false, nil
	}

	utterance := domain.Utterance{Text: text, CapturedAt: a.now()}
	intent := Dispatch(utterance.Text)
	a.logger.Info("dispatched", "text", utterance.Text, "intent", intent)

	switch intent {
	case domain.IntentExit:
		return true, nil
	case domain.IntentTime:
		a.handleTime(ctx)
	case domain.IntentWeather:
		a.handleWeather(ctx)
	case domain.IntentNews:
		a.handleNews(ctx)
	case domain.IntentSendSMS:
		a.handleSMS(ctx)
	case domain.IntentPicture:
		a.handlePicture(ctx)
	case domain.IntentVideo:
		a.handleVideo(ctx)
	default:
		a.handleQuery(ctx, utterance.Text)
	}
	return false, nil
}

// listen records one utterance and transcribes it. A transcription
// failure degrades to an empty transcript.
func (a *Assistant) listen(ctx context.Context) (string, error) {
	a.draw(listeningMarker)

	wavData, err := a.recorder.Record(ctx)
	if err != nil {
		return "", fmt.Errorf("recording: %w", err)
	}

	text, err := a.transcriber.Transcribe(ctx, wavData)
	if err != nil {
		a.logger.Warn("transcription failed", "error", err)
		return "", nil
	}
	return strings.ToLower(strings.TrimSpace(text)), nil
}

func (a *Assistant) greet(ctx context.Context) {
	var greeting string
	switch hour := a.now().Hour(); {
	case hour < 12:
		greeting = "good morning"
	case hour < 20:
		greeting = "good afternoon"
	default:
		greeting = "good evening"
	}
	a.say(ctx, greeting)
	a.say(ctx, "how may i help you")
}

func (a *Assistant) handleTime(ctx context.Context) {
	clock := a.now().Format("15:04")
	a.respond(ctx, clock, clock)
}

func (a *Assistant) handleWeather(ctx context.Context) {
	answer, err := a.knowledge.Answer(ctx, a.weatherQuery)
	if err != nil {
		a.respond(ctx, "Weather unavailable", "Weather unavailable")
		return
	}
	a.respond(ctx, answer, answer)
}

// handleNews is the one handler that fails silently: a fetch error is
// logged and the cycle just ends.
func (a *Assistant) handleNews(ctx context.Context) {
	headlines, err := a.news.Headlines(ctx, a.headlineCount)
	if err != nil {
		a.logger.Error("fetching headlines", "error", err)
		return
	}
	for _, headline := range headlines {
		a.say(ctx, headline)
		select {
		case <-ctx.Done():
			return
		case <-time.After(a.headlinePause):
		}
	}
	a.draw("News done")
}

func (a *Assistant) handleSMS(ctx context.Context) {
	a.say(ctx, "who to send")
	recipient, err := a.listen(ctx)
	if err != nil {
		a.logger.Error("capturing recipient", "error", err)
		return
	}
	a.say(ctx, "message")
	body, err := a.listen(ctx)
	if err != nil {
		a.logger.Error("capturing message body", "error", err)
		return
	}

	number, ok := a.contacts.Lookup(recipient)
	if !ok {
		a.respond(ctx, "Contact not found", "No contact")
		return
	}

	err = a.sms.Send(ctx, number, body)
	switch {
	case errors.Is(err, ErrNotConfigured):
		a.respond(ctx, "Twilio not configured", "SMS off")
	case err != nil:
		a.logger.Error("sending sms", "error", err, "to", recipient)
		a.respond(ctx, "Message failed", "SMS failed")
	default:
		a.draw("SMS sent")
	}
}

func (a *Assistant) handlePicture(ctx context.Context) {
	index, err := a.photoCount.Next()
	if err != nil {
		a.logger.Error("reading photo counter", "error", err)
		a.respond(ctx, "Camera error", "Photo failed")
		return
	}

	path := filepath.Join(a.mediaDir, fmt.Sprintf("img%d.jpg", index))
	if err := a.camera.CapturePhoto(ctx, path); err != nil {
		a.logger.Error("capturing photo", "error", err)
		a.respond(ctx, "Camera error", "Photo failed")
		return
	}
	if err := a.photoCount.Commit(index); err != nil {
		a.logger.Error("persisting photo counter", "error", err, "index", index)
	}

	if err := a.uploader.Upload(ctx, path); err != nil {
		a.logger.Error("uploading photo", "error", err, "path", path)
		a.respond(ctx, "Upload failed", "Upload failed")
		return
	}

	a.say(ctx, "image saved")
	a.draw("Photo OK")
}

func (a *Assistant) handleVideo(ctx context.Context) {
	index, err := a.videoCount.Next()
	if err != nil {
		a.logger.Error("reading video counter", "error", err)
		a.respond(ctx, "Camera error", "Video failed")
		return
	}

	raw := filepath.Join(a.mediaDir, fmt.Sprintf("vid%d.h264", index))
	if err := a.camera.CaptureVideo(ctx, raw, a.videoWindow); err != nil {
		a.logger.Error("capturing video", "error", err)
		a.respond(ctx, "Camera error", "Video failed")
		return
	}
	if err := a.videoCount.Commit(index); err != nil {
		a.logger.Error("persisting video counter", "error", err, "index", index)
	}

	// Upload whatever was actually produced: the mp4 when the transcode
	// succeeded, the raw capture otherwise.
	upload := raw
	mp4 := strings.TrimSuffix(raw, ".h264") + ".mp4"
	if err := a.transcoder.Transcode(ctx, raw, mp4); err != nil {
		a.logger.Warn("transcode failed, uploading raw capture", "error", err)
	} else {
		upload = mp4
	}

	if err := a.uploader.Upload(ctx, upload); err != nil {
		a.logger.Error("uploading video", "error", err, "path", upload)
		a.respond(ctx, "Upload failed", "Upload failed")
		return
	}

	a.say(ctx, "video saved")
	a.draw("Video OK")
}

func (a *Assistant) handleQuery(ctx context.Context, text string) {
	answer, err := a.knowledge.Answer(ctx, text)
	if err != nil {
		a.say(ctx, "I didn't understand that")
		a.draw("Unknown cmd")
		return
	}
	a.respond(ctx, answer, answer)
}

func (a *Assistant) respond(ctx context.Context, spoken, shown string) {
	a.say(ctx, spoken)
	a.draw(shown)
}

func (a *Assistant) say(ctx context.Context, text string) {
	if err := a.speaker.Speak(ctx, text); err != nil {
		a.logger.Error("speaking", "error", err, "text", text)
	}
}

func (a *Assistant) draw(message string) {
	if err := a.display.Render(a.now().Format("15:04"), message); err != nil {
		a.logger.Error("rendering display", "error", err)
	}
}
