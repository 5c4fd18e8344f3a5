package catalog

import "sync"

// DefaultName names the built-in catalog.
const DefaultName = "haimen"

// HaimenSpec returns the built-in Haimen Middle School culture catalog. The
// order of every list is part of the document format.
func HaimenSpec() Spec {
	return Spec{
		Name: DefaultName,
		Buildings: []string{
			"弘謇楼", "行健楼", "博雅院", "致远馆", "思源堂",
			"明德楼", "求真楼", "务实堂", "博学院", "笃行馆",
		},
		History: []string{
			"1903年创校", "张謇题写校名", "百年名校", "江苏省重点中学",
			"传承百年文脉", "培育时代英才", "历经沧桑岁月", "砥砺前行",
		},
		Motto: []string{
			"明德博学", "求真务实", "笃行致远", "弘毅自强",
			"格物致知", "诚意正心", "修身齐家", "立德树人",
		},
		Activities: []string{
			"校运会", "艺术节", "模联会议", "科技节", "读书节",
			"社团活动", "志愿服务", "研学旅行", "文化讲座",
		},
		Nature: []string{
			"梧桐大道", "银杏林", "樱花园", "荷花池", "紫藤长廊",
			"竹林深处", "桂花飘香", "月季盛开", "松柏常青",
		},
		Verbs: []string{
			"漫步在", "徜徉于", "驻足于", "穿过", "走过",
			"眺望", "回忆", "见证", "传承", "感受",
		},
		Adjectives: []string{
			"庄严的", "古朴的", "现代化的", "历史悠久的", "充满活力的",
			"宁静的", "书香浓郁的", "生机勃勃的", "底蕴深厚的",
		},
		Templates: []string{
			"{verb}{adjective}{building}，感受{history}的厚重底蕴。",
			"{nature}边，{motto}的精神代代相传。",
			"在{activity}中，学子们展现青春风采。",
			"{building}见证了{history}，传承着{motto}的理念。",
			"{adjective}{nature}旁，{building}静静矗立。",
		},
	}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(HaimenSpec())
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
})

// Default returns the built-in catalog. The same immutable value is shared by
// every caller.
func Default() *Catalog {
	return defaultCatalog()
}
