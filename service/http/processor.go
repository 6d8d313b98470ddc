package http

import (
	perr "cardprobe/error"
	"cardprobe/pkg/card"
	"cardprobe/utils"
	"encoding/base64"
	"fmt"
	"github.com/derekparker/trie"
	"net/http"
	"strconv"
	"time"
)

const helpText = `
    card reader simulator

    HTTP API:

    /open?port=COM4      open the serial port
        optional: card_type (Mifare, UltraLight, CPU, ISO14443B, ISO15693, Other)
                  delay (poll interval in ms, default 300)
                  debug (default false)
    /close               close the serial port
    /isopen              report whether the serial port is open
    /uid                 read the card UID
    /write?data=         write data, base64 encoded
    /read?len=           read len bytes, returned base64 encoded
`

type Router struct {
	method string
	path   string
	fn     func(ctx *Context)
}

type processor struct {
	reader *card.Reader
	router []*Router
	trie   *trie.Trie
}

func (p *processor) route(method, path string) func(ctx *Context) {
	node, found := p.trie.Find(utils.MD5(methodPath(method, path)))
	if found {
		fn := node.Meta().(func(ctx *Context))
		return fn
	}

	return nil
}

func (p *processor) worker(ctx *Context) {
	req := ctx.request
	fn := p.route(req.method, req.path)
	if fn == nil {
		ctx.respStatus(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	fn(ctx)
}

func newProcessor(r *card.Reader) *processor {
	proc := &processor{
		reader: r,
	}

	register(proc)
	return proc
}

func register(p *processor) {
	r := []*Router{
		{
			method: http.MethodGet,
			path:   "/",
			fn: func(ctx *Context) {
				ctx.text(helpText)
			},
		},
		{
			method: http.MethodGet,
			path:   "/open",
			fn: func(ctx *Context) {
				q := ctx.request.query
				opts := card.OpenOptions{
					CardType: card.UltraLight,
				}
				if ct := q.Get("card_type"); ct != "" {
					opts.CardType = card.ParseCardType(ct)
				}
				if d := q.Get("delay"); d != "" {
					ms, err := strconv.ParseUint(d, 10, 32)
					if err != nil {
						ctx.respFailed(fmt.Sprintf("invalid delay: %s", d))
						return
					}
					opts.Delay = time.Duration(ms) * time.Millisecond
				}
				if d := q.Get("debug"); d != "" {
					debug, err := strconv.ParseBool(d)
					if err != nil {
						ctx.respFailed(fmt.Sprintf("invalid debug: %s", d))
						return
					}
					opts.Debug = debug
				}

				if err := p.reader.Open(q.Get("port"), opts); err != nil {
					ctx.respFailed(err.Error())
					return
				}
				if ctx.logger != nil {
					o := p.reader.Options()
					ctx.logger.Infof("opened %s card_type=%s delay=%s debug=%v", p.reader.Port(), o.CardType, o.Delay, o.Debug)
				}
				ctx.respSuccess("OK")
			},
		},
		{
			method: http.MethodGet,
			path:   "/close",
			fn: func(ctx *Context) {
				p.reader.Close()
				ctx.respSuccess("OK")
			},
		},
		{
			method: http.MethodGet,
			path:   "/isopen",
			fn: func(ctx *Context) {
				ctx.respSuccess(strconv.FormatBool(p.reader.IsOpen()))
			},
		},
		{
			method: http.MethodGet,
			path:   "/uid",
			fn: func(ctx *Context) {
				uid, err := p.reader.UID()
				if err != nil {
					ctx.respFailed(err.Error())
					return
				}
				ctx.respSuccess(uid)
			},
		},
		{
			method: http.MethodGet,
			path:   "/write",
			fn: func(ctx *Context) {
				data, err := base64.StdEncoding.DecodeString(ctx.request.query.Get("data"))
				if err != nil {
					ctx.respFailed(fmt.Sprintf("%s: %v", perr.InvalidPayload, err))
					return
				}

				n, err := p.reader.Write(data)
				if err != nil {
					ctx.respFailed(fmt.Sprintf("write failed: %v", err))
					return
				}
				ctx.respSuccess(fmt.Sprintf("write succeeded, data length: %d", n))
			},
		},
		{
			method: http.MethodGet,
			path:   "/read",
			fn: func(ctx *Context) {
				l := ctx.request.query.Get("len")
				n, err := strconv.ParseUint(l, 10, 8)
				if err != nil {
					ctx.respFailed(fmt.Sprintf("%s: %q", perr.InvalidLength, l))
					return
				}

				data, err := p.reader.Read(int(n))
				if err != nil {
					ctx.respFailed(fmt.Sprintf("read failed: %v", err))
					return
				}
				ctx.respSuccess(base64.StdEncoding.EncodeToString(data))
			},
		},
	}

	p.router = r

	t := trie.New()
	for _, router := range p.router {
		md5 := utils.MD5(methodPath(router.method, router.path))
		t.Add(md5, router.fn)
	}

	p.trie = t
}

func methodPath(method, path string) string {
	return fmt.Sprintf("%s:%s", method, path)
}
