package eventbus

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// EventBus dispatches published events to every subscribed handler whose
// function signature matches the published arguments.
type EventBus interface {
	Publish(args ...interface{})
	Subscribe(handler interface{})
	Unsubscribe(handler interface{})
	Clear()
	SubscribersCount() int
}

type subscriber struct {
	handler interface{}
}

type publisherImpl struct {
	log         *logrus.Logger
	subscribers []subscriber
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

// MatchSignature reports whether handler is a func whose parameters can
// accept args positionally.
func MatchSignature(handler interface{}, args []interface{}) bool {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func {
		return false
	}
	if t.NumIn() != len(args) {
		return false
	}

	for i, arg := range args {
		paramType := t.In(i)
		if arg == nil {
			if paramType.Kind() != reflect.Interface && paramType.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		argType := reflect.TypeOf(arg)
		if paramType.Kind() == reflect.Interface {
			if !argType.Implements(paramType) {
				return false
			}
			continue
		}
		if !argType.AssignableTo(paramType) {
			return false
		}
	}

	return true
}

func (p *publisherImpl) Publish(args ...interface{}) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	handled := false
	for _, sub := range p.subscribers {
		if !MatchSignature(sub.handler, args) {
			continue
		}
		v := reflect.ValueOf(sub.handler)
		// The event counts as handled once a matching handler is dispatched,
		// even if that handler panics mid-call.
		handled = true
		// A panicking handler must not take down the publisher or the
		// remaining subscribers.
		func() {
			defer func() {
				if r := recover(); r != nil {
					if p.log != nil {
						p.log.Errorf("eventbus: handler %s panicked with args %v: %v", v.Type().String(), args, r)
					}
				}
			}()
			v.Call(in)
		}()
	}

	if !handled && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", in)
	}
}

func (p *publisherImpl) Subscribe(handler interface{}) {
	if reflect.TypeOf(handler).Kind() != reflect.Func {
		panic("eventbus: handler must be a function")
	}
	p.subscribers = append(p.subscribers, subscriber{handler: handler})
}

func (p *publisherImpl) Unsubscribe(handler interface{}) {
	ptr := reflect.ValueOf(handler).Pointer()
	for i, sub := range p.subscribers {
		if reflect.ValueOf(sub.handler).Pointer() == ptr {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

func (p *publisherImpl) Clear() {
	p.subscribers = nil
}

func (p *publisherImpl) SubscribersCount() int {
	return len(p.subscribers)
}
