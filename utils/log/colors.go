package log

import (
	"bytes"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var (
	escapedESC = []byte("\\u001b")
	rawESC     = []byte("\u001b")
)

// colorEncoder is a console encoder that lets ANSI sequences inside messages
// and fields through instead of escaping them.
type colorEncoder struct {
	zapcore.Encoder
}

func NewColor(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return colorEncoder{Encoder: zapcore.NewConsoleEncoder(cfg)}
}

func (c colorEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf, err := c.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	if !bytes.Contains(buf.Bytes(), escapedESC) {
		return buf, nil
	}
	line := bytes.ReplaceAll(buf.Bytes(), escapedESC, rawESC)
	buf.Reset()
	_, _ = buf.Write(line)
	return buf, nil
}

func (c colorEncoder) Clone() zapcore.Encoder {
	return colorEncoder{Encoder: c.Encoder.Clone()}
}
