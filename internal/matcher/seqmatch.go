package matcher

// SequenceRatio 计算两个字符串的字符级相似比：所有最长公共块的
// 总长度M对两串总长的比值 2M/T。恒等串为1.0，完全不同为0.0。
// 技能词一类的短文本在没有可用向量时用它兜底。
// 贪心选块在最长块并列时依赖输入顺序，这里取两个方向中较大的
// 匹配总长，保证 SequenceRatio(a,b) == SequenceRatio(b,a)。
func SequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	matched := matchedTotal(ra, rb)
	if m := matchedTotal(rb, ra); m > matched {
		matched = m
	}
	return 2.0 * float64(matched) / float64(total)
}

// matchedTotal 单方向计算全部匹配块的总长
func matchedTotal(a, b []rune) int {
	matched := 0
	for _, block := range matchingBlocks(a, b) {
		matched += block.size
	}
	return matched
}

type matchBlock struct {
	aStart, bStart, size int
}

// matchingBlocks 递归收集两串的最长匹配块：先找整体最长公共子串，
// 再在其左右两侧分治。
func matchingBlocks(a, b []rune) []matchBlock {
	// b中每个字符的出现位置索引
	b2j := make(map[rune][]int, len(b))
	for j, ch := range b {
		b2j[ch] = append(b2j[ch], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}
	var blocks []matchBlock

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		best := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if best.size == 0 {
			continue
		}
		blocks = append(blocks, best)
		if s.alo < best.aStart && s.blo < best.bStart {
			queue = append(queue, span{s.alo, best.aStart, s.blo, best.bStart})
		}
		if best.aStart+best.size < s.ahi && best.bStart+best.size < s.bhi {
			queue = append(queue, span{best.aStart + best.size, s.ahi, best.bStart + best.size, s.bhi})
		}
	}
	return blocks
}

// longestMatch 在限定窗口内找最长公共子串，动态规划按行滚动
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) matchBlock {
	best := matchBlock{aStart: alo, bStart: blo}
	// j2len[j] = 以 a[i-1] 和 b[j-1] 结尾的公共后缀长度
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > best.size {
				best = matchBlock{aStart: i - k + 1, bStart: j - k + 1, size: k}
			}
		}
		j2len = newJ2len
	}
	return best
}
