package eventbus

// TopicContentEvents 는 게시글 발행, 뉴스레터 구독 등 콘텐츠 이벤트가 흐르는 토픽이다.
// 이름은 config.yaml 의 kafka.topic 으로 교체할 수 있다.
var TopicContentEvents = NewTopic("portfolio.content.events")

// SetContentTopic replaces the content topic name; blank keeps the default.
func SetContentTopic(name string) {
	if name != "" {
		TopicContentEvents = NewTopic(name)
	}
}
