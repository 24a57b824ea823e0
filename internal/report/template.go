package report

const pageTemplate = `<!doctype html>
<html lang="ja">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Daily AI News — {{.Updated}}</title>
  <link rel="stylesheet" href="style.css"/>
</head>
<body>
  <header class="site-header">
    <div class="brand">📰 Daily AI News</div>
    <div class="updated">最終更新：{{.Updated}}</div>
  </header>

  <main class="container">
    <h1 class="page-title">今日の最新AI情報</h1>
    <p class="lead">エンジニア関連度でランキングし、直近{{.Hours}}時間の更新を配信します。</p>

    <section class="kpi-grid">
      {{range .Sections}}
      <div class="kpi-card">
        <div class="kpi-value">{{.Count}}件</div>
        <div class="kpi-label">{{.Note}}</div>
      </div>
      {{end}}
      <div class="kpi-card">
        <div class="kpi-value">{{.Total}}件</div>
        <div class="kpi-label">合計</div>
        <div class="kpi-note">JST</div>
      </div>
    </section>

    {{if .TopPicks}}
    <section class="top-picks">
      <h2>⭐ 注目トピック</h2>
      {{range .TopPicks}}
      <article class="pick">
        <span class="priority {{.PriorityClass}}" title="{{.PriorityLabel}}">{{.PriorityIcon}}</span>
        {{if .URL}}<a class="pick-title" href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}<span class="pick-title">{{.Title}}</span>{{end}}
        {{if .TitleJA}}<div class="pick-title-ja">{{.TitleJA}}</div>{{end}}
        <span class="chip ghost">{{.Source}}</span>
      </article>
      {{end}}
    </section>
    {{end}}

    <nav class="tabs" role="tablist">
      {{range $i, $s := .Sections}}
      <button class="tab{{if eq $i 0}} active{{end}}" data-target="#{{$s.DomID}}" aria-selected="{{if eq $i 0}}true{{else}}false{{end}}">{{$s.Icon}} {{$s.Note}}</button>
      {{end}}
    </nav>

    {{range .Sections}}
    <section id="{{.DomID}}" class="tab-panel{{if .Hidden}} hidden{{end}}">
      {{if .Items}}{{range .Items}}
      <article class="card {{.PriorityClass}}">
        <div class="card-header">
          <span class="priority" title="{{.PriorityLabel}}">{{.PriorityIcon}}</span>
          {{if .URL}}<a class="card-title" href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}<span class="card-title">{{.Title}}</span>{{end}}
          <span class="score">{{.Score}}</span>
        </div>
        {{if .TitleJA}}<div class="card-title-ja">{{.TitleJA}}</div>{{end}}
        <div class="card-body">
          <p class="card-summary">{{.Summary}}</p>
          <div class="chips">
            <span class="chip">{{.Source}}</span>
            {{if .TimeAgo}}<span class="chip ghost">{{.TimeAgo}}</span>{{end}}
            {{range .Tags}}<span class="chip tag">{{.}}</span>{{end}}
          </div>
        </div>
        {{if .URL}}<div class="card-footer">出典: <a href="{{.URL}}" target="_blank" rel="noopener">{{.URL}}</a></div>{{end}}
      </article>
      {{end}}{{else}}
      <div class="empty">新着なし（期間を広げるかフィードを追加してください）</div>
      {{end}}
    </section>
    {{end}}

    <section class="note">
      <p>方針：一次情報（公式ブログ/プレス/論文）を優先。一般ニュースは AI キーワードで抽出。各カード末尾に<strong>出典URL</strong>を明記。</p>
    </section>
  </main>

  <footer class="site-footer">
    <div>Generated by <code>dainews</code> · Timezone: JST</div>
  </footer>

  <script>
    const tabs = document.querySelectorAll('.tab');
    tabs.forEach(btn => btn.addEventListener('click', () => {
      tabs.forEach(b => { b.classList.remove('active'); b.setAttribute('aria-selected','false'); });
      btn.classList.add('active'); btn.setAttribute('aria-selected','true');
      document.querySelectorAll('.tab-panel').forEach(p => p.classList.add('hidden'));
      const target = document.querySelector(btn.dataset.target);
      if (target) target.classList.remove('hidden');
    }));
  </script>
</body>
</html>
`
