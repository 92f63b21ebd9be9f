package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Settings 日志文件配置
type Settings struct {
	Path       string `yaml:"Path"`
	Name       string `yaml:"Name"`
	Ext        string `yaml:"Ext"`
	TimeFormat string `yaml:"TimeFormat"`
}

type logLevel int

const (
	DEBUG logLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

const (
	flags = log.LstdFlags | log.Lmicroseconds
	// 日志消息池的大小，表示最多能缓存多少条未写出的消息
	bufferSize = 1e5
)

type logEntry struct {
	msg   string
	level logLevel
}

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Logger 异步日志对象，消息经channel送入单独的写goroutine
type Logger struct {
	logFile   *os.File
	logger    *log.Logger
	entryChan chan *logEntry
	entryPool *sync.Pool
}

// DefaultLogger 默认日志对象
var DefaultLogger = NewStdoutLogger()

// NewStdoutLogger 新建一个向标准输出写日志的logger
func NewStdoutLogger() *Logger {
	logger := &Logger{
		logFile:   nil,
		logger:    log.New(os.Stdout, "", flags),
		entryChan: make(chan *logEntry, bufferSize),
		entryPool: &sync.Pool{
			New: func() any {
				return &logEntry{}
			},
		},
	}
	go func() {
		for e := range logger.entryChan {
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
	}()
	return logger
}

// NewFileLogger 新建一个同时向标准输出和日志文件写日志的logger
// 日志文件按settings.TimeFormat滚动
func NewFileLogger(settings *Settings) (*Logger, error) {
	fileName := logFileName(settings)
	logFile, err := mustOpen(fileName, settings.Path)
	if err != nil {
		return nil, fmt.Errorf("open log file error: %v", err)
	}
	logger := &Logger{
		logFile:   logFile,
		logger:    log.New(io.MultiWriter(os.Stdout, logFile), "", flags),
		entryChan: make(chan *logEntry, bufferSize),
		entryPool: &sync.Pool{
			New: func() any {
				return &logEntry{}
			},
		},
	}

	go func() {
		for e := range logger.entryChan {
			// 每次收到日志消息，根据时间拼出目标日志文件名，与当前文件不一致说明需要滚动
			name := logFileName(settings)
			if path.Join(settings.Path, name) != logger.logFile.Name() {
				newFile, err := mustOpen(name, settings.Path)
				if err != nil {
					panic("open log file " + name + " failed: " + err.Error())
				}
				_ = logger.logFile.Close()
				logger.logFile = newFile
				logger.logger = log.New(io.MultiWriter(os.Stdout, newFile), "", flags)
			}
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
	}()

	return logger, nil
}

func logFileName(settings *Settings) string {
	return fmt.Sprintf("%s-%s.%s", settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
}

// Setup 用给定配置替换DefaultLogger
func Setup(settings *Settings) {
	logger, err := NewFileLogger(settings)
	if err != nil {
		panic(err)
	}
	DefaultLogger = logger
}

// Output 发送一条日志消息到logger
func (logger *Logger) Output(level logLevel, msg string) {
	var formattedMsg string
	// file表示调用方所在文件，line为对应行号
	_, file, line, ok := runtime.Caller(2)
	if ok {
		formattedMsg = fmt.Sprintf("[%s][%s:%d] %s", levelFlags[level], filepath.Base(file), line, msg)
	} else {
		formattedMsg = fmt.Sprintf("[%s] %s", levelFlags[level], msg)
	}

	entry := logger.entryPool.Get().(*logEntry)
	entry.msg = formattedMsg
	entry.level = level
	logger.entryChan <- entry
}

func Debug(v ...any) {
	DefaultLogger.Output(DEBUG, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	DefaultLogger.Output(DEBUG, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	DefaultLogger.Output(INFO, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	DefaultLogger.Output(INFO, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	DefaultLogger.Output(WARNING, fmt.Sprintln(v...))
}

func Warnf(format string, v ...any) {
	DefaultLogger.Output(WARNING, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	DefaultLogger.Output(ERROR, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	DefaultLogger.Output(ERROR, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	DefaultLogger.Output(FATAL, fmt.Sprintln(v...))
}

func Fatalf(format string, v ...any) {
	DefaultLogger.Output(FATAL, fmt.Sprintf(format, v...))
}
